//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/autobranch/internal/domain/entities"
	"github.com/rios0rios0/autobranch/internal/domain/repositories"
)

// StubUpdateFlattener returns a fixed list of updates.
type StubUpdateFlattener struct {
	Updates    []entities.Update
	FlattenErr error
	CallCount  int
}

var _ repositories.UpdateFlattener = (*StubUpdateFlattener)(nil)

func (f *StubUpdateFlattener) Flatten(
	_ context.Context,
	_ *entities.Settings,
	_ entities.PackageFiles,
) ([]entities.Update, error) {
	f.CallCount++
	if f.FlattenErr != nil {
		return nil, f.FlattenErr
	}
	updates := make([]entities.Update, len(f.Updates))
	copy(updates, f.Updates)
	return updates, nil
}

// StubPackageFileRepository returns fixed package files.
type StubPackageFileRepository struct {
	PackageFiles entities.PackageFiles
	LoadErr      error
	LoadedPaths  []string
}

var _ repositories.PackageFileRepository = (*StubPackageFileRepository)(nil)

func (r *StubPackageFileRepository) Load(path string) (entities.PackageFiles, error) {
	r.LoadedPaths = append(r.LoadedPaths, path)
	return r.PackageFiles, r.LoadErr
}
