// Package seed loads the starter exercise catalogue and generates synthetic
// training history for demos and local development.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/broccoli/backend/internal/database"
	"github.com/broccoli/backend/internal/entities"
)

//go:embed catalog.yaml
var catalogYAML []byte

type Group struct {
	Name      string   `yaml:"name"`
	Exercises []string `yaml:"exercises"`
}

type catalogFile struct {
	Groups []Group `yaml:"groups"`
}

// CatalogResult counts the rows Catalog inserted.
type CatalogResult struct {
	Categories int
	Exercises  int
}

// Groups returns the embedded catalogue.
func Groups() ([]Group, error) {
	return parseGroups(catalogYAML)
}

func parseGroups(data []byte) ([]Group, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalogue: %w", err)
	}
	for _, g := range file.Groups {
		if err := entities.ValidateName(g.Name); err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
		for _, name := range g.Exercises {
			if err := entities.ValidateName(name); err != nil {
				return nil, fmt.Errorf("exercise %q in group %q: %w", name, g.Name, err)
			}
		}
	}
	return file.Groups, nil
}

// Catalog ensures every group and exercise of the embedded catalogue exists.
// Existing rows are matched by name, so running it again inserts nothing.
func Catalog(ctx context.Context, db *database.Database) (CatalogResult, error) {
	groups, err := Groups()
	if err != nil {
		return CatalogResult{}, err
	}
	return ensureGroups(ctx, db, groups)
}

func ensureGroups(ctx context.Context, db *database.Database, groups []Group) (CatalogResult, error) {
	var result CatalogResult
	err := db.WithTx(ctx, func(tx *gorm.DB) error {
		for _, g := range groups {
			var category entities.Category
			if err := tx.Where("name = ?", g.Name).Limit(1).Find(&category).Error; err != nil {
				return fmt.Errorf("failed to look up category %q: %w", g.Name, err)
			}
			if category.ID == 0 {
				category = entities.Category{Name: g.Name}
				if err := tx.Create(&category).Error; err != nil {
					return fmt.Errorf("failed to create category %q: %w", g.Name, err)
				}
				result.Categories++
			}

			for _, name := range g.Exercises {
				var exercise entities.Exercise
				if err := tx.Where("name = ? AND category_id = ?", name, category.ID).Limit(1).Find(&exercise).Error; err != nil {
					return fmt.Errorf("failed to look up exercise %q: %w", name, err)
				}
				if exercise.ID != 0 {
					continue
				}
				exercise = entities.Exercise{Name: name, CategoryID: category.ID}
				if err := tx.Omit("Category").Create(&exercise).Error; err != nil {
					return fmt.Errorf("failed to create exercise %q: %w", name, err)
				}
				result.Exercises++
			}
		}
		return nil
	})
	if err != nil {
		return CatalogResult{}, err
	}
	return result, nil
}
