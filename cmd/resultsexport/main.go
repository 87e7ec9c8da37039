package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/vncsmyrnk/voteverse/internal/adapters/repository/badgerdb"
	"github.com/vncsmyrnk/voteverse/internal/core/services"
)

// Offline job: renders the election results document to a file, the
// same JSON the admin dashboard offers as a download. Run it while
// the server is stopped; the store is single-process.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var dataDir, outPath string
	flag.StringVar(&dataDir, "data-dir", envOrDefault("DATA_DIR", "data"), "Store directory")
	flag.StringVar(&outPath, "out", "", "Output file (default election-results-<date>.json)")
	flag.Parse()

	if outPath == "" {
		outPath = fmt.Sprintf("election-results-%s.json", time.Now().Format("2006-01-02"))
	}

	store, err := badgerdb.Open(dataDir)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	resultsService := services.NewResultsService(badgerdb.NewElectionRepository(store))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log.Println("Exporting election results...")

	data, err := resultsService.Export(ctx)
	if err != nil {
		log.Fatalf("Error exporting results: %v", err)
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Fatalf("Error writing %s: %v", outPath, err)
	}

	log.Printf("Results written to %s", outPath)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
