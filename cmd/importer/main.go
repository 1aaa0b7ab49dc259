package main

import (
	"context"
	"flag"
	"log"
	"os"

	"grocerpos/internal/config"
	"grocerpos/internal/db"
	"grocerpos/internal/importer"
	productrepo "grocerpos/internal/repository/product"
)

func main() {
	path := flag.String("file", "", "path to a JSON product export")
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if *path == "" {
		logger.Fatal("missing -file flag")
	}

	f, err := os.Open(*path)
	if err != nil {
		logger.Fatalf("open export: %v", err)
	}
	defer f.Close()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	repo := productrepo.NewPostgres(pool, logger)
	imp := importer.NewJSONImporter(f, repo)

	n, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d products: %v", n, err)
	}
	logger.Printf("imported %d products", n)
}
