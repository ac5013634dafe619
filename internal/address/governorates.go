package address

// Governorates maps each Egyptian governorate to its selectable cities.
// An address's state must be one of these keys.
var Governorates = map[string][]string{
	"القاهرة":        {"مدينة نصر", "مصر الجديدة", "المعادي"},
	"الجيزة":         {"الدقي", "المهندسين", "6 أكتوبر"},
	"الإسكندرية":     {"محرم بك", "سيدي جابر", "العصافرة"},
	"الدقهلية":       {"المنصورة"},
	"البحر الأحمر":   {"الغردقة"},
	"البحيرة":        {"دمنهور"},
	"الفيوم":         {"الفيوم الجديدة"},
	"الغربية":        {"طنطا"},
	"الإسماعيلية":    {"فايد"},
	"المنوفية":       {"شبين الكوم"},
	"المنيا":         {"ملوي"},
	"القليوبية":      {"بنها"},
	"الوادي الجديد":  {"الخارجة"},
	"سوهاج":          {"سوهاج"},
	"أسيوط":          {"أسيوط"},
	"دمياط":          {"دمياط"},
	"بورسعيد":        {"بورفؤاد"},
	"السويس":         {"حي الأربعين"},
	"شمال سيناء":     {"العريش"},
	"جنوب سيناء":     {"شرم الشيخ"},
	"كفر الشيخ":      {"كفر الشيخ"},
	"مطروح":          {"مرسى مطروح"},
	"الأقصر":         {"الأقصر"},
	"قنا":            {"قنا"},
	"أسوان":          {"أسوان"},
}

// KnownState reports whether state is a listed governorate.
func KnownState(state string) bool {
	_, ok := Governorates[state]
	return ok
}

// CitiesOf returns the cities of a governorate, nil for unknown ones.
func CitiesOf(state string) []string {
	return Governorates[state]
}
