package address

// Dwelling types. Each type requires its own detail fields, but every
// field persists regardless of the current type so switching types in
// the form never loses data.
const (
	TypeApartment = "apartment"
	TypeOffice    = "office"
	TypeHouse     = "house"
)

// Address is one saved delivery address. Records keep their insertion
// order; deleting one shifts the ones after it up by one slot.
type Address struct {
	ID               string `json:"id"`
	UserID           string `json:"-"`
	LocationType     string `json:"location_type"`
	State            string `json:"state"`
	City             string `json:"city"`
	AddressLine      string `json:"address_line"`
	Street           string `json:"street"`
	Building         string `json:"building"`
	FloorNumber      string `json:"floor_number"`
	ApartmentNumber  string `json:"apartment_number"`
	DepartmentNumber string `json:"department_number"`
	House            string `json:"house"`
	Mobile           string `json:"mobile"`
	Phone            string `json:"phone"`
	Instructions     string `json:"instructions"`
}
