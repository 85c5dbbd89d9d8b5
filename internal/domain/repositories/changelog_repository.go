package repositories

import (
	"context"

	"github.com/rios0rios0/autobranch/internal/domain/entities"
)

// ChangelogRepository embeds release notes into grouped updates. Implementations
// set Update.LogJSON in place through BranchUpgrades.Set and must not add or
// remove branches.
type ChangelogRepository interface {
	Embed(ctx context.Context, upgrades *entities.BranchUpgrades) error
}

// ChangelogFactory creates a ChangelogRepository reading from the given location.
type ChangelogFactory func(location string) ChangelogRepository
