package domain

import "encoding/json"

const (
	DefaultUnit     = "stk"
	DefaultCategory = "Annet"
	DefaultServings = 2
)

// Item is a pantry ingredient. The unit travels as "massurment" on the wire.
type Item struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"massurment"`
	Category string  `json:"category"`
}

// GroceryItem is an entry on the shopping list.
type GroceryItem struct {
	Item
	Completed  bool            `json:"completed"`
	Importance json.RawMessage `json:"importance,omitempty"`
}

type Recipe struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Servings    float64            `json:"servings"`
	Ingredients []RecipeIngredient `json:"ingredients"`
	Image       string             `json:"image,omitempty"`
}

type RecipeIngredient struct {
	Name        string  `json:"name"`
	Measurement string  `json:"measurement"`
	Quantity    float64 `json:"quantity"`
	Category    string  `json:"category"`
}
