// Package data holds the static menu and warehouse seed lists. The menu is
// immutable at runtime; price changes ship as code changes.
package data

// Categories.
const (
	CategoryBurger = "burger"
	CategoryUfo    = "ufo"
	CategoryExtra  = "extra"
	CategoryDrink  = "drink"
	CategoryOther  = "other"
)

// CatalogItem is a sellable menu entry. Exactly one of Price or Prices is
// set: burgers price by meat, sized items price by size, flat items carry a
// single Price.
type CatalogItem struct {
	Name           string             `json:"name"`
	Category       string             `json:"category"`
	Description    string             `json:"description,omitempty"`
	Price          float64            `json:"price,omitempty"`
	Prices         map[string]float64 `json:"prices,omitempty"`
	AvailableMeats []string           `json:"availableMeats,omitempty"`
	Sizes          []string           `json:"sizes,omitempty"`
}

var Burgers = []CatalogItem{
	{
		Name:           "CLASSIC",
		Category:       CategoryBurger,
		Description:    "Wołowina Hereford lub kurczak, sałata, pomidor, ogórek, cebula, sos firmowy",
		Prices:         map[string]float64{"smash90": 22.00, "beef": 29.00, "chicken": 25.00},
		AvailableMeats: []string{"smash90", "beef", "chicken"},
	},
	{
		Name:           "Cheese",
		Category:       CategoryBurger,
		Description:    "Ser cheddar x2, sałata, pomidor, ogórek, cebula, sos firmowy",
		Prices:         map[string]float64{"smash90": 26.00, "beef": 31.00, "chicken": 27.00},
		AvailableMeats: []string{"smash90", "beef", "chicken"},
	},
	{
		Name:           "Bluecheese",
		Category:       CategoryBurger,
		Description:    "Bluecheese, sałata, pomidor, ogórek, cebula, sos różowy",
		Prices:         map[string]float64{"smash90": 26.00, "beef": 32.00, "chicken": 28.00},
		AvailableMeats: []string{"smash90", "beef", "chicken"},
	},
	{
		Name:           "Sharpjalapeno",
		Category:       CategoryBurger,
		Description:    "Ser cheddar x2, pomidor, ostry ogórek, papryczki jalapeno, pikantny sos majonezowy",
		Prices:         map[string]float64{"smash90": 27.00, "beef": 32.00, "chicken": 28.00},
		AvailableMeats: []string{"smash90", "beef", "chicken"},
	},
	{
		Name:           "Jack Daniels",
		Category:       CategoryBurger,
		Description:    "Ser cheddar x2, pomidor, ogórek, cebula prażona, sos Jack Daniels",
		Prices:         map[string]float64{"smash90": 27.00, "beef": 34.00, "chicken": 30.00},
		AvailableMeats: []string{"smash90", "beef", "chicken"},
	},
	{
		Name:           "Wege",
		Category:       CategoryBurger,
		Description:    "Kotlet wegański, pomidor, ogórek, sałata, cebula, sos",
		Prices:         map[string]float64{"beef": 35.00},
		AvailableMeats: []string{"beef"},
	},
	{
		Name:           "Szatan",
		Category:       CategoryBurger,
		Description:    "Pomidor, ostry ogórek, papryczki jalapeno, sałata, cheddar, sos prosto z piekła",
		Prices:         map[string]float64{"beef": 31.00, "chicken": 30.00},
		AvailableMeats: []string{"beef", "chicken"},
	},
	{
		Name:           "Wypas",
		Category:       CategoryBurger,
		Description:    "Boczek x3, cheddar x2, gorgonzola, cebula prażona, sos musztardowo-miodowy",
		Prices:         map[string]float64{"smash90": 26.00, "beef": 33.00, "chicken": 31.00},
		AvailableMeats: []string{"smash90", "beef", "chicken"},
	},
	{
		Name:           "Harry",
		Category:       CategoryBurger,
		Description:    "Cheddar x2, cebula prażona, krążki cebulowe, sos biały oraz klasyczny",
		Prices:         map[string]float64{"smash90": 25.00, "beef": 32.00, "chicken": 28.00},
		AvailableMeats: []string{"smash90", "beef", "chicken"},
	},
	{
		Name:           "Bekon",
		Category:       CategoryBurger,
		Description:    "Boczek x2, cheddar x2, pomidor, ogórek, cebula, sałata, sos barbecue",
		Prices:         map[string]float64{"smash90": 24.00, "beef": 32.00, "chicken": 28.00},
		AvailableMeats: []string{"smash90", "beef", "chicken"},
	},
	{
		Name:           "Kafar",
		Category:       CategoryBurger,
		Description:    "Podwójne mięso, boczek x4, cheddar x4, cebula prażona, sos firmowy, sos biały",
		Prices:         map[string]float64{"smash90": 34.00, "beef": 40.00, "chicken": 38.00},
		AvailableMeats: []string{"smash90", "beef", "chicken"},
	},
	{
		Name:           "Burgerozilla",
		Category:       CategoryBurger,
		Description:    "Potrójne mięso 3x170g, 6 plastrów boczku, potrójny ser",
		Prices:         map[string]float64{"beef": 55.00, "chicken": 51.00},
		AvailableMeats: []string{"beef", "chicken"},
	},
	{
		Name:           "Drwal",
		Category:       CategoryBurger,
		Description:    "Camembert, pomidor, ogórek, boczek, żurawina",
		Prices:         map[string]float64{"smash90": 30.00, "beef": 35.00, "chicken": 33.00},
		AvailableMeats: []string{"smash90", "beef", "chicken"},
	},
	{
		Name:           "Serowy",
		Category:       CategoryBurger,
		Description:    "Cheddar x2, sałata, pomidor, ogórek, cebula, sos firmowy",
		Prices:         map[string]float64{"smash90": 23.00, "beef": 30.00, "chicken": 27.00},
		AvailableMeats: []string{"smash90", "beef", "chicken"},
	},
	{
		Name:           "Nachos",
		Category:       CategoryBurger,
		Description:    "Cheddar x2, nachosy, sałata, jalapeno, ogórek, cebula, sos firmowy",
		Prices:         map[string]float64{"smash90": 25.00, "beef": 34.00, "chicken": 30.00},
		AvailableMeats: []string{"smash90", "beef", "chicken"},
	},
	{
		Name:           "Mini",
		Category:       CategoryBurger,
		Description:    "Cheddar, sałata, pomidor, ogórek, cebula, sos firmowy",
		Prices:         map[string]float64{"beef": 19.00, "chicken": 17.00},
		AvailableMeats: []string{"beef", "chicken"},
	},
	{
		Name:           "Nduja",
		Category:       CategoryBurger,
		Description:    "Kiełbasa nduja, boczek, cheddar x2, cebula czerwona, sos klasyczny, sos bbq",
		Prices:         map[string]float64{"smash90": 25.00, "beef": 31.00, "chicken": 30.00},
		AvailableMeats: []string{"smash90", "beef", "chicken"},
	},
	{
		Name:           "Boss",
		Category:       CategoryBurger,
		Description:    "Boczek x3, nduja, pasta tartufata, mascarpone, gorgonzola, pomidor, ogórek",
		Prices:         map[string]float64{"smash90": 29.00, "beef": 39.00, "chicken": 35.00},
		AvailableMeats: []string{"smash90", "beef", "chicken"},
	},
}

var UfoBurgers = []CatalogItem{
	{
		Name:        "U.F.O Klasyczne",
		Category:    CategoryUfo,
		Description: "Wołowina Hereford, cheddar x3, cebula czerwona, ogórek, sos firmowy",
		Price:       25.00,
	},
	{
		Name:        "U.F.O Bacon",
		Category:    CategoryUfo,
		Description: "Wołowina Hereford, cheddar x3, chrupiący boczek, cebula czerwona, ogórek",
		Price:       28.00,
	},
	{
		Name:        "U.F.O Sharp",
		Category:    CategoryUfo,
		Description: "Wołowina Hereford, cheddar x3, jalapeno z ostrym sosem, cebula czerwona",
		Price:       28.00,
	},
}

var Extras = []CatalogItem{
	{
		Name:     "Frytki",
		Category: CategoryExtra,
		Prices:   map[string]float64{"M": 9.00, "L": 12.00},
		Sizes:    []string{"M", "L"},
	},
	{Name: "Frytki z batatów", Category: CategoryExtra, Price: 14.00},
	{Name: "Krążki cebulowe", Category: CategoryExtra, Price: 12.00},
	{Name: "Sos", Category: CategoryExtra, Price: 3.00},
	{Name: "Popsy", Category: CategoryExtra, Price: 20.00},
	{Name: "Stripsy", Category: CategoryExtra, Price: 20.00},
}

var Drinks = []CatalogItem{
	{
		Name:     "Pepsi",
		Category: CategoryDrink,
		Prices:   map[string]float64{"0.5l": 7.00, "1l": 10.00},
		Sizes:    []string{"0.5l", "1l"},
	},
	{
		Name:     "Mirinda",
		Category: CategoryDrink,
		Prices:   map[string]float64{"0.5l": 7.00, "1l": 10.00},
		Sizes:    []string{"0.5l", "1l"},
	},
	{
		Name:     "Seven Up",
		Category: CategoryDrink,
		Prices:   map[string]float64{"0.5l": 7.00, "1l": 10.00},
		Sizes:    []string{"0.5l", "1l"},
	},
	{
		Name:     "Lipton",
		Category: CategoryDrink,
		Prices:   map[string]float64{"0.5l": 7.00, "1l": 10.00},
		Sizes:    []string{"0.5l", "1l"},
	},
	{
		Name:     "Pierrot 330ML",
		Category: CategoryDrink,
		Prices:   map[string]float64{"330ml": 8.00},
		Sizes:    []string{"330ml"},
	},
}

// Catalog is the full menu in display order.
var Catalog = buildCatalog()

func buildCatalog() []CatalogItem {
	items := make([]CatalogItem, 0, len(Burgers)+len(UfoBurgers)+len(Extras)+len(Drinks))
	items = append(items, Burgers...)
	items = append(items, UfoBurgers...)
	items = append(items, Extras...)
	items = append(items, Drinks...)
	return items
}

// FindItem looks up a menu entry by exact name.
func FindItem(name string) (CatalogItem, bool) {
	for _, item := range Catalog {
		if item.Name == name {
			return item, true
		}
	}
	return CatalogItem{}, false
}

// ItemCategory resolves a sold item name to its catalog category. Names not
// found in the menu fall into "other".
func ItemCategory(name string) string {
	item, ok := FindItem(name)
	if !ok {
		return CategoryOther
	}
	return item.Category
}
