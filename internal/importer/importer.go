package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bookstore/internal/domain"
	"github.com/shopspring/decimal"
)

// BookWriter is the write surface the importer needs from the catalog.
type BookWriter interface {
	Upsert(ctx context.Context, b domain.Book) (*domain.Book, error)
}

// CSVImporter reads catalog CSV exports and inserts/updates books.
//
// Expected header: title,author,category,price,stock,rating,reviews,image_url,description
// (column order is free; unknown columns are ignored).
type CSVImporter struct {
	reader   *csv.Reader
	bookRepo BookWriter
}

func NewCSVImporter(r io.Reader, repo BookWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:   csvr,
		bookRepo: repo,
	}
}

// Run parses CSV rows and upserts one book per row. It returns the
// number of books imported; on error the count covers the rows already
// saved.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["title"]; !ok {
		return 0, errors.New("missing required column: title")
	}

	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		line++

		b, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", line, err)
		}
		if b == nil {
			continue
		}

		if _, err := i.bookRepo.Upsert(ctx, *b); err != nil {
			return imported, fmt.Errorf("save %q: %w", b.Title, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (*domain.Book, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	title := field("title")
	author := field("author")
	if title == "" && author == "" {
		// blank row
		return nil, nil
	}
	if title == "" || author == "" {
		return nil, errors.New("title and author required")
	}

	price, err := decimal.NewFromString(field("price"))
	if err != nil {
		return nil, fmt.Errorf("invalid price for %q: %w", title, err)
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("price must be positive for %q", title)
	}

	b := domain.Book{
		Title:       title,
		Author:      author,
		Category:    field("category"),
		Price:       price,
		ImageURL:    field("image_url"),
		Description: field("description"),
	}

	if v := field("stock"); v != "" {
		if b.Stock, err = strconv.Atoi(v); err != nil || b.Stock < 0 {
			return nil, fmt.Errorf("invalid stock for %q", title)
		}
	}
	if v := field("rating"); v != "" {
		if b.Rating, err = decimal.NewFromString(v); err != nil {
			return nil, fmt.Errorf("invalid rating for %q: %w", title, err)
		}
	}
	if v := field("reviews"); v != "" {
		if b.Reviews, err = strconv.Atoi(v); err != nil || b.Reviews < 0 {
			return nil, fmt.Errorf("invalid reviews for %q", title)
		}
	}

	return &b, nil
}
