package main

import (
	"context"
	"flag"
	"log"
	"os"

	"bookstore/internal/config"
	"bookstore/internal/db"
	"bookstore/internal/importer"
	bookrepo "bookstore/internal/repository/book"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to book catalog CSV export")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, bookrepo.NewPostgres(pool, logger))
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d books: %v", count, err)
	}

	logger.Printf("imported %d books", count)
}
