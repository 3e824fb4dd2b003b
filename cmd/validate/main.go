package main

import (
	"flag"
	"fmt"
	"os"

	"tree-explorer-api/internal/dataset"

	"github.com/jonboulle/clockwork"
)

// validate loads a tree inventory CSV the same way the API does and reports
// what the service would see: row counts, catalogs, diameter bounds, and how
// many rows would be excluded from each view.
func main() {
	file := flag.String("file", "", "Path to the CSV file to validate")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Validating dataset: %s\n", *file)

	store, err := dataset.Load(*file, clockwork.NewRealClock())
	if err != nil {
		fmt.Printf("Error loading dataset: %v\n", err)
		os.Exit(1)
	}

	var missingDBH, invalidCoords, missingSpecies int
	for _, t := range store.Records() {
		if !t.HasDBH() {
			missingDBH++
		}
		if !t.HasValidCoordinates() {
			invalidCoords++
		}
		if t.CommonName == "" {
			missingSpecies++
		}
	}

	minDBH, maxDBH := store.DBHBounds()

	fmt.Printf("Rows:           %d\n", store.Len())
	fmt.Printf("Neighborhoods:  %d\n", len(store.Neighborhoods()))
	fmt.Printf("Parks:          %d\n", len(store.Parks()))
	fmt.Printf("DBH bounds:     %d to %d inches\n", minDBH, maxDBH)
	fmt.Printf("Missing DBH:    %d (excluded from diameter filtering)\n", missingDBH)
	fmt.Printf("Bad coordinates: %d (excluded from map rendering)\n", invalidCoords)
	fmt.Printf("Missing species: %d (shown as Unknown on maps)\n", missingSpecies)
}
