package backend

import (
	"encoding/json"
	"fmt"
	"os"

	"flatacuties/feature/characters/models"
)

// seedFile is the json-server db.json layout.
type seedFile struct {
	Characters []models.Character `json:"characters"`
}

// LoadSeed reads the characters collection of a json-server db.json file.
func LoadSeed(path string) ([]models.Character, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file seedFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return file.Characters, nil
}
