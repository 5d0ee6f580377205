package memory

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"moviesapi/proj/internal/domain/models"
)

//go:embed movies.json
var defaultSeed []byte

// LoadSeed reads the initial dataset from path, or the bundled one when path
// is empty. The dataset is read once and never written back.
func LoadSeed(path string) ([]models.Movie, error) {
	data := defaultSeed
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading seed file: %w", err)
		}
	}
	var movies []models.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, fmt.Errorf("decoding seed: %w", err)
	}
	seen := make(map[string]struct{}, len(movies))
	for _, m := range movies {
		if m.ID == "" {
			return nil, fmt.Errorf("seed movie %q has no id", m.Title)
		}
		if _, ok := seen[m.ID]; ok {
			return nil, fmt.Errorf("duplicate seed movie id %q", m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	return movies, nil
}
