// cmd/import/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/rhulucas/dhl-fm-mapping-tool/internal/csvconv"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/models"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/query"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/store"
)

// Import một file CSV thành data.json, có kiểm tra tính đầy đủ của từng
// bản ghi sau khi convert. Entry point này dùng bộ default riêng
// (manager "TBD"), khác với endpoint upload.
func main() {
	in := flag.String("in", "", "input CSV file (required)")
	out := flag.String("out", "data.json", "output data file")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	raw, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *in, err)
	}

	rows, err := csvconv.ParseRows(string(raw))
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	data, err := csvconv.RowsToFacilities(rows, csvconv.FileImportDefaults)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	invalid := 0
	for _, f := range data.Features {
		if errs := models.ValidateFeature(f); len(errs) > 0 {
			invalid++
			log.Printf("%s: %d validation error(s)", f.Properties.ID, len(errs))
			for _, e := range errs {
				log.Printf("  - %s", e)
			}
		}
	}
	if invalid > 0 {
		log.Printf("Warning: %d of %d records have validation errors", invalid, len(data.Features))
	}

	fileStore := store.NewFileStore(*out)
	if err := fileStore.Save(context.Background(), data); err != nil {
		log.Fatalf("Failed to write data file: %v", err)
	}

	stats := query.ComputeStats(data)
	log.Printf("Imported %d facilities to %s", stats.TotalFacilities, *out)
	log.Printf("Total square footage: %d", stats.TotalSqft)
	log.Printf("Total employees: %d", stats.TotalEmployees)
}
