package main

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// generateSampleMenu writes a sample menu in plain and gzipped form.
// Row "Cake" carries a malformed price and is skipped by the loader.
func main() {
	dataDir := "data/menu"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	rows := [][]string{
		{"Category", "Item", "Price"},
		{"Mains", "Burger", "5.00"},
		{"Mains", "Cheeseburger", "5.75"},
		{"Mains", "Veggie Wrap", "4.50"},
		{"Sides", "Fries", "2.50"},
		{"Sides", "Onion Rings", "3.00"},
		{"Drinks", "Soda", "1.50"},
		{"Drinks", "Iced Tea", "1.75"},
		{"Drinks", "Coffee", "2.00"},
		{"Desserts", "Sundae", "3.25"},
		{"Desserts", "Cake", "abc"},
	}

	plainPath := filepath.Join(dataDir, "menu.csv")
	if err := createMenuFile(plainPath, rows, false); err != nil {
		log.Fatalf("Failed to create %s: %v", plainPath, err)
	}
	fmt.Printf("Created %s with %d rows\n", plainPath, len(rows)-1)

	gzPath := filepath.Join(dataDir, "menu.csv.gz")
	if err := createMenuFile(gzPath, rows, true); err != nil {
		log.Fatalf("Failed to create %s: %v", gzPath, err)
	}
	fmt.Printf("Created %s with %d rows\n", gzPath, len(rows)-1)

	fmt.Println("\nSample menu files created successfully!")
	fmt.Println("Upload menu.csv.gz under S3_PREFIX to serve it from S3.")
}

func createMenuFile(filePath string, rows [][]string, compress bool) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	var out io.Writer = file
	if compress {
		gzipWriter := gzip.NewWriter(file)
		defer gzipWriter.Close()
		out = gzipWriter
	}

	w := csv.NewWriter(out)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write menu rows: %w", err)
	}

	return nil
}
