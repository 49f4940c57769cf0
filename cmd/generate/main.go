// cmd/generate/main.go
package main

import (
	"context"
	"flag"
	"log"

	"github.com/rhulucas/dhl-fm-mapping-tool/internal/generator"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/query"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/store"
)

func main() {
	count := flag.Int("count", 100, "number of facilities to generate")
	seed := flag.Int64("seed", 42, "random seed (same seed, same output)")
	out := flag.String("out", "data.json", "output data file")
	flag.Parse()

	data := generator.New(*seed).Generate(*count)

	fileStore := store.NewFileStore(*out)
	if err := fileStore.Save(context.Background(), data); err != nil {
		log.Fatalf("Failed to write data file: %v", err)
	}

	stats := query.ComputeStats(data)
	log.Printf("Generated %d facilities to %s", stats.TotalFacilities, *out)
	log.Printf("Total square footage: %d", stats.TotalSqft)
	log.Printf("Total employees: %d", stats.TotalEmployees)
	for _, ftype := range stats.ByType.Keys() {
		log.Printf("  %s: %d", ftype, stats.ByType.Get(ftype))
	}
}
