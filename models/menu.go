package models

type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Ingredients []string `json:"ingredients"`
}

const (
	CategoryAntipasti = "antipasti"
	CategoryPrimi     = "primi"
	CategorySecondi   = "secondi"
	CategoryPizze     = "pizze"
	CategoryDolci     = "dolci"
	CategoryBevande   = "bevande"
)

// MenuCategories is the display order of the category tabs.
var MenuCategories = []string{
	CategoryAntipasti,
	CategoryPrimi,
	CategorySecondi,
	CategoryPizze,
	CategoryDolci,
	CategoryBevande,
}
