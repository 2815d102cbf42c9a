package locale

import "fmt"

// ===============================
// Vocabularies
// ===============================

type HairColor string

const (
	HairBlonde   HairColor = "blonde"
	HairBrunette HairColor = "brunette"
	HairFair     HairColor = "fair"
	HairRedhead  HairColor = "redhead"
	HairBrown    HairColor = "brown"
)

type Ethnicity string

const (
	EthnicityAsian   Ethnicity = "asian"
	EthnicityMulatto Ethnicity = "mulatto"
	EthnicitySlavic  Ethnicity = "slavic"
)

type BodyType string

const (
	BodySlim  BodyType = "slim"
	BodyFit   BodyType = "fit"
	BodySport BodyType = "sport"
	BodyDense BodyType = "dense"
	BodyFat   BodyType = "fat"
)

type BreastType string

const (
	BreastNatural  BreastType = "natural"
	BreastSilicone BreastType = "silicone"
)

type City string

const (
	CityKyiv    City = "kyiv"
	CityKharkiv City = "kharkiv"
	CityOdesa   City = "odesa"
	CityDnipro  City = "dnipro"
	CityLviv    City = "lviv"
)

// ===============================
// Translation tables
// ===============================

type table map[string]map[Lang]string

var hairColors = table{
	"blonde":   {UK: "Блондинка", RU: "Блондинка", EN: "Blondes"},
	"brunette": {UK: "Брюнетка", RU: "Брюнетка", EN: "Brunettes"},
	"fair":     {UK: "Русява", RU: "Русая", EN: "Fair-haired"},
	"redhead":  {UK: "Руда", RU: "Рыжая", EN: "Redheads"},
	"brown":    {UK: "Шатенка", RU: "Шатенка", EN: "Brown-haired"},
}

var ethnicities = table{
	"asian":   {UK: "Азіатка", RU: "Азиатка", EN: "Asians"},
	"mulatto": {UK: "Мулатка", RU: "Мулатка", EN: "Mulatto"},
	"slavic":  {UK: "Слов'янка", RU: "Славянка", EN: "Slavic"},
}

var bodyTypes = table{
	"slim":  {UK: "Худа", RU: "Худая", EN: "Slim"},
	"fit":   {UK: "Струнка", RU: "Стройная", EN: "Fit"},
	"sport": {UK: "Спортивна", RU: "Спортивная", EN: "Sporty"},
	"dense": {UK: "Щільна", RU: "Плотная", EN: "Dense"},
	"fat":   {UK: "Товста", RU: "Полная", EN: "Fat"},
}

var breastTypes = table{
	"natural":  {UK: "Натуральні", RU: "Натуральная", EN: "Natural"},
	"silicone": {UK: "Силіконова", RU: "Силиконовая", EN: "Silicone"},
}

var cities = table{
	"kyiv":    {UK: "Київ", RU: "Киев", EN: "Kyiv"},
	"kharkiv": {UK: "Харків", RU: "Харьков", EN: "Kharkiv"},
	"odesa":   {UK: "Одеса", RU: "Одесса", EN: "Odesa"},
	"dnipro":  {UK: "Дніпро", RU: "Днепр", EN: "Dnipro"},
	"lviv":    {UK: "Львів", RU: "Львов", EN: "Lviv"},
}

// lookup never fails: a value or language missing from the table
// resolves to the raw value.
func (t table) lookup(value string, lang Lang) string {
	if byLang, ok := t[value]; ok {
		if s, ok := byLang[lang]; ok {
			return s
		}
	}
	return value
}

func (t table) has(value string) bool {
	_, ok := t[value]
	return ok
}

func (v HairColor) Translate(lang Lang) string  { return hairColors.lookup(string(v), lang) }
func (v Ethnicity) Translate(lang Lang) string  { return ethnicities.lookup(string(v), lang) }
func (v BodyType) Translate(lang Lang) string   { return bodyTypes.lookup(string(v), lang) }
func (v BreastType) Translate(lang Lang) string { return breastTypes.lookup(string(v), lang) }
func (v City) Translate(lang Lang) string       { return cities.lookup(string(v), lang) }

func (v HairColor) IsValid() bool  { return hairColors.has(string(v)) }
func (v Ethnicity) IsValid() bool  { return ethnicities.has(string(v)) }
func (v BodyType) IsValid() bool   { return bodyTypes.has(string(v)) }
func (v BreastType) IsValid() bool { return breastTypes.has(string(v)) }
func (v City) IsValid() bool       { return cities.has(string(v)) }

// ===============================
// Listing (filter UI)
// ===============================

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Vocabulary struct {
	Name    string   `json:"name"`
	Options []Option `json:"options"`
}

var vocabularyOrder = []struct {
	name   string
	values []string
	table  table
}{
	{"hair_color", []string{"blonde", "brunette", "fair", "redhead", "brown"}, hairColors},
	{"ethnicity", []string{"asian", "mulatto", "slavic"}, ethnicities},
	{"body_type", []string{"slim", "fit", "sport", "dense", "fat"}, bodyTypes},
	{"breast_type", []string{"natural", "silicone"}, breastTypes},
	{"city", []string{"kyiv", "kharkiv", "odesa", "dnipro", "lviv"}, cities},
}

// Vocabularies returns every vocabulary with labels in lang, in a stable order.
func Vocabularies(lang Lang) []Vocabulary {
	out := make([]Vocabulary, 0, len(vocabularyOrder))
	for _, v := range vocabularyOrder {
		opts := make([]Option, 0, len(v.values))
		for _, value := range v.values {
			opts = append(opts, Option{Value: value, Label: v.table.lookup(value, lang)})
		}
		out = append(out, Vocabulary{Name: v.name, Options: opts})
	}
	return out
}

// ValidateAttributes checks the four mandatory categorical attributes and
// the optional city.
func ValidateAttributes(h HairColor, e Ethnicity, b BodyType, bt BreastType, c *City) error {
	switch {
	case !h.IsValid():
		return fmt.Errorf("unknown hair_color %q", h)
	case !e.IsValid():
		return fmt.Errorf("unknown ethnicity %q", e)
	case !b.IsValid():
		return fmt.Errorf("unknown body_type %q", b)
	case !bt.IsValid():
		return fmt.Errorf("unknown breast_type %q", bt)
	case c != nil && !c.IsValid():
		return fmt.Errorf("unknown city %q", *c)
	}
	return nil
}
