package models

import "strings"

// Category is the fixed set of expense categories.
type Category string

const (
	CategoryFood          Category = "FOOD"
	CategoryTransport     Category = "TRANSPORT"
	CategoryUtilities     Category = "UTILITIES"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryHealth        Category = "HEALTH"
	CategoryEducation     Category = "EDUCATION"
	CategoryShopping      Category = "SHOPPING"
	CategoryHousing       Category = "HOUSING"
	CategoryPersonal      Category = "PERSONAL"
	CategoryOther         Category = "OTHER"
)

// categoryKeywords maps categories to their classification keywords.
// Declaration order matters: the first category with a keyword hit wins,
// so earlier entries take precedence on multi-category matches.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryFood, []string{
		"market", "yemek", "ekmek", "gıda", "restaurant", "kafe", "kahve",
		"starbucks", "migros", "carrefour", "a101", "pizza", "dominos",
	}},
	{CategoryTransport, []string{
		"benzin", "yakıt", "otobüs", "metro", "taksi", "uber", "araç",
		"uçak", "bilet", "pegasus", "thy", "transfer",
	}},
	{CategoryUtilities, []string{
		"elektrik", "su", "gaz", "internet", "telefon", "fatura", "doğalgaz",
	}},
	{CategoryEntertainment, []string{
		"sinema", "film", "konser", "tiyatro", "oyun", "netflix", "spotify",
		"abonel", "disney",
	}},
	{CategoryHealth, []string{
		"doktor", "hastane", "eczane", "ilaç", "sağlık",
	}},
	{CategoryEducation, []string{
		"kitap", "kurs", "eğitim", "okul", "ders", "udemy", "coursera",
	}},
	{CategoryShopping, []string{
		"giyim", "kıyafet", "ayakkabı", "alışveriş", "laptop", "bilgisayar",
		"telefon", "mouse", "klavye", "monitör", "kamera", "kulaklık",
		"macbook", "iphone", "samsung", "apple", "logitech", "asus", "msi",
		"lenovo", "dell", "hp", "razer", "keychron", "anker", "teknosa",
		"vatan", "mediamarkt", "hepsiburada", "trendyol", "amazon", "n11",
		"gittigidiyor", "usb", "disk", "hard", "ssd", "ram", "ekran",
		"tablet", "ipad", "airpods", "çanta", "kılıf", "aksesuar", "hub",
		"adapter", "kablo", "şarj", "powerbank", "trackpad", "webcam",
		"mikrofon",
	}},
	{CategoryHousing, []string{
		"kira", "rent", "ev", "mobilya", "otel", "konaklama", "hilton",
		"hertz", "kiralama",
	}},
	{CategoryPersonal, []string{
		"kuaför", "berber", "güzellik", "spa", "masaj",
	}},
}

var categoryEmojis = map[Category]string{
	CategoryFood:          "🍔",
	CategoryTransport:     "🚗",
	CategoryUtilities:     "💡",
	CategoryEntertainment: "🎬",
	CategoryHealth:        "🏥",
	CategoryEducation:     "📚",
	CategoryShopping:      "🛍️",
	CategoryHousing:       "🏠",
	CategoryPersonal:      "💇",
	CategoryOther:         "📦",
}

var validCategories = map[Category]bool{
	CategoryFood:          true,
	CategoryTransport:     true,
	CategoryUtilities:     true,
	CategoryEntertainment: true,
	CategoryHealth:        true,
	CategoryEducation:     true,
	CategoryShopping:      true,
	CategoryHousing:       true,
	CategoryPersonal:      true,
	CategoryOther:         true,
}

// CategoryFromKeywords classifies a description using case-insensitive
// substring matching against the per-category keyword lists. Returns
// CategoryOther when nothing matches.
func CategoryFromKeywords(text string) Category {
	lower := strings.ToLower(text)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.category
			}
		}
	}
	return CategoryOther
}

// ParseCategory normalizes a free-form token (e.g. an LLM response) into a
// Category. Unrecognized tokens map to CategoryOther.
func ParseCategory(token string) Category {
	c := Category(strings.ToUpper(strings.TrimSpace(token)))
	if validCategories[c] {
		return c
	}
	return CategoryOther
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return validCategories[c]
}

// Emoji returns the display emoji for the category.
func (c Category) Emoji() string {
	if emoji, ok := categoryEmojis[c]; ok {
		return emoji
	}
	return "❓"
}

func (c Category) String() string {
	return string(c)
}
