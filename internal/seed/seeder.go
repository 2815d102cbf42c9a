// Package seed loads the initial catalog from JSON files into an empty store.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	domain "github.com/BruksfildServices01/profile-catalog/internal/domain/catalog"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, repo domain.Repository) error
}

type Runner struct {
	Seeders []Seeder
}

// Defaults returns the seeders in dependency order: services, then profiles.
func Defaults(dir string) Runner {
	return Runner{Seeders: []Seeder{
		ServicesSeeder{Dir: dir},
		ProfilesSeeder{Dir: dir},
	}}
}

func (r Runner) Run(ctx context.Context, repo domain.Repository) error {
	if repo == nil {
		return errors.New("nil repository")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, repo); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return nil
}

// readJSON decodes dir/name into out. A missing file reports false.
func readJSON(dir, name string, out any) (bool, error) {
	path := filepath.Join(dir, name)

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("seed file not found, skipping", "file", path)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(b, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", path, err)
	}
	return true, nil
}
