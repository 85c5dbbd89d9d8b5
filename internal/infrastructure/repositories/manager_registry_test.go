//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	infraRepos "github.com/rios0rios0/autobranch/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/autobranch/test/infrastructure/repositorydoubles"
)

func TestManagerRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should register and retrieve a manager by name", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewManagerRegistry()
		reg.Register(&doubles.StubManagerRepository{ManagerName: "pyenv"})

		// when
		m := reg.Get("pyenv")

		// then
		assert.NotNil(t, m)
		assert.Equal(t, "pyenv", m.Name())
	})

	t.Run("should return nil for unknown manager", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewManagerRegistry()

		// when
		m := reg.Get("nonexistent")

		// then
		assert.Nil(t, m)
	})

	t.Run("should list managers and names in name order", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewManagerRegistry()
		reg.Register(&doubles.StubManagerRepository{ManagerName: "pyenv"})
		reg.Register(&doubles.StubManagerRepository{ManagerName: "helm-values"})

		// when
		all := reg.All()
		names := reg.Names()

		// then
		assert.Len(t, all, 2)
		assert.Equal(t, "helm-values", all[0].Name())
		assert.Equal(t, []string{"helm-values", "pyenv"}, names)
	})

	t.Run("should detect the manager owning a path", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewManagerRegistry()
		reg.Register(&doubles.StubManagerRepository{ManagerName: "pyenv", MatchPaths: []string{".python-version"}})
		reg.Register(&doubles.StubManagerRepository{ManagerName: "helm-values", MatchPaths: []string{"values.yaml"}})

		// when
		detected := reg.Detect("values.yaml")
		missing := reg.Detect("go.mod")

		// then
		assert.Equal(t, "helm-values", detected.Name())
		assert.Nil(t, missing)
	})
}
