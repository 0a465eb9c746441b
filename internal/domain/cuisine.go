package domain

import "strings"

// Cuisine style constants
const (
	CuisinePizza       = "pizza"
	CuisineBurger      = "burger"
	CuisineIsraeli     = "israeli"
	CuisineCafe        = "cafe"
	CuisinePita        = "pita"
	CuisineHighCuisine = "high_cuisine"
	CuisineItalian     = "italian"
	CuisineAsian       = "asian"
	CuisineVegetarian  = "vegetarian"
	CuisineBakery      = "bakery"
)

// FallbackCuisineColor - цвет маркера для неизвестных тегов
const FallbackCuisineColor = "#17a2b8"

// AllowedCuisines - допустимые теги в порядке отображения
var AllowedCuisines = []string{
	CuisinePizza,
	CuisineBurger,
	CuisineIsraeli,
	CuisineCafe,
	CuisinePita,
	CuisineHighCuisine,
	CuisineItalian,
	CuisineAsian,
	CuisineVegetarian,
	CuisineBakery,
}

var cuisineDisplayNames = map[string]string{
	CuisinePizza:       "Pizza",
	CuisineBurger:      "Burger",
	CuisineIsraeli:     "Israeli",
	CuisineCafe:        "Cafe",
	CuisinePita:        "Pita",
	CuisineHighCuisine: "High Cuisine",
	CuisineItalian:     "Italian",
	CuisineAsian:       "Asian",
	CuisineVegetarian:  "Vegetarian",
	CuisineBakery:      "Bakery",
}

var cuisineColors = map[string]string{
	CuisinePizza:       "#e74c3c",
	CuisineBurger:      "#f39c12",
	CuisineIsraeli:     "#3498db",
	CuisineCafe:        "#9b59b6",
	CuisinePita:        "#27ae60",
	CuisineHighCuisine: "#8e44ad",
	CuisineItalian:     "#e67e22",
	CuisineAsian:       "#f1c40f",
	CuisineVegetarian:  "#2ecc71",
	CuisineBakery:      "#d35400",
}

// CuisineDisplayName возвращает название для показа; неизвестный тег возвращается как есть
func CuisineDisplayName(style string) string {
	if name, ok := cuisineDisplayNames[style]; ok {
		return name
	}
	return style
}

// CuisineColor возвращает цвет маркера или FallbackCuisineColor
func CuisineColor(style string) string {
	if color, ok := cuisineColors[style]; ok {
		return color
	}
	return FallbackCuisineColor
}

// IsAllowedCuisine проверяет тег без учёта регистра и пробелов по краям
func IsAllowedCuisine(style string) bool {
	_, ok := cuisineDisplayNames[strings.ToLower(strings.TrimSpace(style))]
	return ok
}
