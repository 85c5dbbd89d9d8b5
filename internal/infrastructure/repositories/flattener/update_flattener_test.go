//go:build unit

package flattener_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autobranch/internal/domain/entities"
	infraRepos "github.com/rios0rios0/autobranch/internal/infrastructure/repositories"
	"github.com/rios0rios0/autobranch/internal/infrastructure/repositories/flattener"
	"github.com/rios0rios0/autobranch/internal/infrastructure/repositories/helmvalues"
	"github.com/rios0rios0/autobranch/internal/infrastructure/repositories/pyenv"
)

func newRegistry() *infraRepos.ManagerRegistry {
	reg := infraRepos.NewManagerRegistry()
	reg.Register(helmvalues.NewManagerRepository())
	reg.Register(pyenv.NewManagerRepository())
	return reg
}

func TestUpdateFlattenerFlatten(t *testing.T) {
	t.Parallel()

	t.Run("should emit one update per dependency target", func(t *testing.T) {
		t.Parallel()

		// given
		packageFiles := entities.PackageFiles{
			"charts/api/values.yaml": {{
				Manager: "helm-values",
				Deps: []entities.Dependency{{
					DepName:      "nginx",
					CurrentValue: "1.24",
					SourceURL:    "https://github.com/nginx/nginx",
					Updates: []entities.DependencyUpdate{
						{BranchName: "autobranch/nginx-1.x", NewValue: "1.25", NewVersion: "1.25.0", UpdateType: "minor"},
						{BranchName: "autobranch/nginx-2.x", NewValue: "2.0", NewVersion: "2.0.0", UpdateType: "major"},
					},
				}},
			}},
		}
		f := flattener.NewUpdateFlattener(newRegistry())

		// when
		updates, err := f.Flatten(context.Background(), entities.NewDefaultSettings(), packageFiles)

		// then
		require.NoError(t, err)
		require.Len(t, updates, 2)
		assert.Equal(t, entities.Update{
			BranchName:   "autobranch/nginx-1.x",
			Manager:      "helm-values",
			PackageFile:  "charts/api/values.yaml",
			DepName:      "nginx",
			CurrentValue: "1.24",
			NewValue:     "1.25",
			NewVersion:   "1.25.0",
			SourceURL:    "https://github.com/nginx/nginx",
			Datasource:   "docker",
			UpdateType:   "minor",
		}, updates[0])
		assert.Equal(t, "autobranch/nginx-2.x", updates[1].BranchName)
	})

	t.Run("should walk package files in path order", func(t *testing.T) {
		t.Parallel()

		// given
		dep := func(name string) []entities.PackageFile {
			return []entities.PackageFile{{
				Manager: "pyenv",
				Deps: []entities.Dependency{{
					DepName: name, CurrentValue: "3.11", Updates: []entities.DependencyUpdate{{NewValue: "3.12"}},
				}},
			}}
		}
		packageFiles := entities.PackageFiles{
			"z/.python-version": dep("z"),
			"a/.python-version": dep("a"),
			"m/.python-version": dep("m"),
		}
		f := flattener.NewUpdateFlattener(newRegistry())

		// when
		updates, err := f.Flatten(context.Background(), entities.NewDefaultSettings(), packageFiles)

		// then
		require.NoError(t, err)
		require.Len(t, updates, 3)
		assert.Equal(t, "a", updates[0].DepName)
		assert.Equal(t, "m", updates[1].DepName)
		assert.Equal(t, "z", updates[2].DepName)
		assert.Equal(t, "docker", updates[0].Versioning)
	})

	t.Run("should detect the manager from the path when none is given", func(t *testing.T) {
		t.Parallel()

		// given
		packageFiles := entities.PackageFiles{
			".python-version": {{Deps: []entities.Dependency{{
				DepName: "python", CurrentValue: "3.11.4",
				Updates: []entities.DependencyUpdate{{NewValue: "3.12.1"}},
			}}}},
		}
		f := flattener.NewUpdateFlattener(newRegistry())

		// when
		updates, err := f.Flatten(context.Background(), entities.NewDefaultSettings(), packageFiles)

		// then
		require.NoError(t, err)
		require.Len(t, updates, 1)
		assert.Equal(t, "pyenv", updates[0].Manager)
		assert.Equal(t, "autobranch/python", updates[0].BranchName)
	})

	t.Run("should skip entries no manager matches", func(t *testing.T) {
		t.Parallel()

		// given
		packageFiles := entities.PackageFiles{
			"Makefile": {{Deps: []entities.Dependency{{
				DepName: "tool", Updates: []entities.DependencyUpdate{{NewValue: "2"}},
			}}}},
		}
		f := flattener.NewUpdateFlattener(newRegistry())

		// when
		updates, err := f.Flatten(context.Background(), entities.NewDefaultSettings(), packageFiles)

		// then
		require.NoError(t, err)
		assert.Empty(t, updates)
	})

	t.Run("should keep named managers that are not registered", func(t *testing.T) {
		t.Parallel()

		// given
		packageFiles := entities.PackageFiles{
			"package.json": {{Manager: "npm", Deps: []entities.Dependency{{
				DepName: "lodash", CurrentValue: "4.0.0", Datasource: "npm",
				Updates: []entities.DependencyUpdate{{NewValue: "4.17.21"}},
			}}}},
		}
		f := flattener.NewUpdateFlattener(newRegistry())

		// when
		updates, err := f.Flatten(context.Background(), entities.NewDefaultSettings(), packageFiles)

		// then
		require.NoError(t, err)
		require.Len(t, updates, 1)
		assert.Equal(t, "npm", updates[0].Manager)
		assert.Equal(t, "npm", updates[0].Datasource)
	})

	t.Run("should skip managers that are not enabled", func(t *testing.T) {
		t.Parallel()

		// given
		packageFiles := entities.PackageFiles{
			"values.yaml": {{Manager: "helm-values", Deps: []entities.Dependency{{
				DepName: "redis", Updates: []entities.DependencyUpdate{{NewValue: "7"}},
			}}}},
		}
		settings := &entities.Settings{BranchPrefix: "deps/", EnabledManagers: []string{"pyenv"}}
		f := flattener.NewUpdateFlattener(newRegistry())

		// when
		updates, err := f.Flatten(context.Background(), settings, packageFiles)

		// then
		require.NoError(t, err)
		assert.Empty(t, updates)
	})

	t.Run("should derive branch names from group, dep or manager", func(t *testing.T) {
		t.Parallel()

		// given
		packageFiles := entities.PackageFiles{
			"package.json": {{Manager: "npm", Deps: []entities.Dependency{
				{DepName: "@types/Node", Updates: []entities.DependencyUpdate{{NewValue: "20"}}},
				{DepName: "react", Updates: []entities.DependencyUpdate{{NewValue: "19", GroupName: "React Monorepo"}}},
				{Updates: []entities.DependencyUpdate{{NewValue: "1"}}},
			}}},
		}
		settings := &entities.Settings{BranchPrefix: "deps/"}
		f := flattener.NewUpdateFlattener(newRegistry())

		// when
		updates, err := f.Flatten(context.Background(), settings, packageFiles)

		// then
		require.NoError(t, err)
		require.Len(t, updates, 3)
		assert.Equal(t, "deps/types/node", updates[0].BranchName)
		assert.Equal(t, "deps/react-monorepo", updates[1].BranchName)
		assert.Equal(t, "deps/npm", updates[2].BranchName)
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		packageFiles := entities.PackageFiles{"values.yaml": {{Manager: "helm-values"}}}
		f := flattener.NewUpdateFlattener(newRegistry())

		// when
		updates, err := f.Flatten(ctx, entities.NewDefaultSettings(), packageFiles)

		// then
		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, updates)
	})
}
