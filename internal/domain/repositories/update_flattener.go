package repositories

import (
	"context"

	"github.com/rios0rios0/autobranch/internal/domain/entities"
)

// UpdateFlattener expands the package files detected in a repository into one
// Update per concrete dependency occurrence and proposed target.
type UpdateFlattener interface {
	Flatten(
		ctx context.Context,
		settings *entities.Settings,
		packageFiles entities.PackageFiles,
	) ([]entities.Update, error)
}
