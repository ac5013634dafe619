package address

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("address not found")
	ErrStateRequired = errors.New("state is required")
	ErrUnknownState  = errors.New("unknown governorate")
)

// ValidationError marks a missing per-type detail field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// validate checks the state against the governorate list and the detail
// fields the dwelling type requires. Fields belonging to other types are
// kept but not checked.
func validate(a *Address) error {
	a.State = strings.TrimSpace(a.State)
	if a.State == "" {
		return ErrStateRequired
	}
	if !KnownState(a.State) {
		return ErrUnknownState
	}

	if a.LocationType == "" {
		a.LocationType = TypeApartment
	}

	var required map[string]string
	switch a.LocationType {
	case TypeApartment:
		required = map[string]string{
			"building":         a.Building,
			"floor_number":     a.FloorNumber,
			"apartment_number": a.ApartmentNumber,
		}
	case TypeOffice:
		required = map[string]string{
			"building":          a.Building,
			"floor_number":      a.FloorNumber,
			"department_number": a.DepartmentNumber,
		}
	case TypeHouse:
		required = map[string]string{
			"house": a.House,
		}
	default:
		return &ValidationError{Field: "location_type"}
	}

	for _, field := range []string{
		"building", "floor_number", "apartment_number",
		"department_number", "house",
	} {
		value, ok := required[field]
		if ok && strings.TrimSpace(value) == "" {
			return &ValidationError{Field: field}
		}
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Address, error) {
	return s.repo.List(ctx, userID)
}

func (s *Service) Create(ctx context.Context, addr *Address) error {
	if err := validate(addr); err != nil {
		return err
	}
	if addr.ID == "" {
		addr.ID = uuid.New().String()
	}
	return s.repo.Create(ctx, addr)
}

// Update replaces one record's fields; its id and slot stay put.
func (s *Service) Update(ctx context.Context, addr Address) error {
	if err := validate(&addr); err != nil {
		return err
	}
	return s.repo.Update(ctx, addr)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}
