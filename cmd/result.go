package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/goscb/internal/search"
)

// saveResult persists a search result bundle so later invocations
// (manual correction, FEM verification) can reuse it.
func saveResult(path string, r *search.Result) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func loadResult(path string) (*search.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var r search.Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing result file %s: %w", path, err)
	}
	return &r, nil
}
