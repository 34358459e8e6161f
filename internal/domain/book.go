package domain

import "github.com/shopspring/decimal"

// Book is a catalog record. The API never writes books; the seed and
// importer commands do.
type Book struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Rating      decimal.Decimal `json:"rating"`
	Reviews     int             `json:"reviews"`
	ImageURL    string          `json:"image_url"`
	Description string          `json:"description"`
}
