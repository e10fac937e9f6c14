package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// DumpToTmpFile writes v as indented JSON into a new temporary file named
// after kind and returns the file name.
func DumpToTmpFile(kind string, v any) (string, error) {
	file, err := os.CreateTemp("", kind+"_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encoding %s: %w", kind, err)
	}
	return file.Name(), nil
}
