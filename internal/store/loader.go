package store

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadDataset reads a seed dataset from a JSON file. The file holds the
// three collections under "incidents", "accounts", and "orders" keys;
// missing keys load as empty collections.
func LoadDataset(path string) (*Dataset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var ds Dataset
	if err := json.Unmarshal(content, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &ds, nil
}
