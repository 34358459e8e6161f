package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type bookSeed struct {
	Title       string
	Author      string
	Category    string
	Price       string
	Stock       int
	Rating      string
	Reviews     int
	ImageURL    string
	Description string
}

// Apply inserts a demo catalog for manual testing. It is idempotent via
// ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	books := []bookSeed{
		{
			Title:       "The Go Programming Language",
			Author:      "Alan A. A. Donovan",
			Category:    "Programming",
			Price:       "39.99",
			Stock:       25,
			Rating:      "4.7",
			Reviews:     412,
			ImageURL:    "https://covers.example.com/gopl.jpg",
			Description: "The authoritative resource for writing clear and idiomatic Go.",
		},
		{
			Title:       "Designing Data-Intensive Applications",
			Author:      "Martin Kleppmann",
			Category:    "Programming",
			Price:       "44.50",
			Stock:       18,
			Rating:      "4.8",
			Reviews:     980,
			ImageURL:    "https://covers.example.com/ddia.jpg",
			Description: "The big ideas behind reliable, scalable, and maintainable systems.",
		},
		{
			Title:       "The Name of the Wind",
			Author:      "Patrick Rothfuss",
			Category:    "Fantasy",
			Price:       "12.99",
			Stock:       40,
			Rating:      "4.5",
			Reviews:     2210,
			ImageURL:    "https://covers.example.com/notw.jpg",
			Description: "The tale of Kvothe, from his childhood in a troupe of traveling players.",
		},
		{
			Title:       "Project Hail Mary",
			Author:      "Andy Weir",
			Category:    "Science Fiction",
			Price:       "15.75",
			Stock:       32,
			Rating:      "4.6",
			Reviews:     1785,
			ImageURL:    "https://covers.example.com/phm.jpg",
			Description: "A lone astronaut must save the earth from disaster.",
		},
		{
			Title:       "Thinking, Fast and Slow",
			Author:      "Daniel Kahneman",
			Category:    "Psychology",
			Price:       "11.20",
			Stock:       27,
			Rating:      "4.3",
			Reviews:     1543,
			ImageURL:    "https://covers.example.com/tfas.jpg",
			Description: "The two systems that drive the way we think.",
		},
	}

	const q = `
INSERT INTO books (title, author, category, price, stock, rating, reviews, image_url, description)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (title, author) DO NOTHING
`
	for _, b := range books {
		if _, err := pool.Exec(ctx, q,
			b.Title, b.Author, b.Category, b.Price, b.Stock, b.Rating, b.Reviews, b.ImageURL, b.Description,
		); err != nil {
			return fmt.Errorf("seed book %q: %w", b.Title, err)
		}
	}
	return nil
}
