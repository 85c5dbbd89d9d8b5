//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/autobranch/internal/domain/entities"
	"github.com/rios0rios0/autobranch/internal/domain/repositories"
)

// SpyChangelogRepository records Embed calls and attaches Notes to every update.
type SpyChangelogRepository struct {
	Notes        *entities.ReleaseNotes
	EmbedErr     error
	EmbedCalls   int
	SeenBranches [][]string
	Locations    []string
}

var _ repositories.ChangelogRepository = (*SpyChangelogRepository)(nil)

// Factory returns a ChangelogFactory handing out this spy.
func (s *SpyChangelogRepository) Factory() repositories.ChangelogFactory {
	return func(location string) repositories.ChangelogRepository {
		s.Locations = append(s.Locations, location)
		return s
	}
}

func (s *SpyChangelogRepository) Embed(_ context.Context, upgrades *entities.BranchUpgrades) error {
	s.EmbedCalls++
	s.SeenBranches = append(s.SeenBranches, upgrades.Names())
	if s.EmbedErr != nil {
		return s.EmbedErr
	}
	if s.Notes == nil {
		return nil
	}

	for _, name := range upgrades.Names() {
		current := upgrades.Get(name)
		embedded := make([]entities.Update, len(current))
		copy(embedded, current)
		for i := range embedded {
			embedded[i].LogJSON = s.Notes
		}
		upgrades.Set(name, embedded)
	}
	return nil
}

// StubManagerRepository is a configurable manager descriptor.
type StubManagerRepository struct {
	ManagerName string
	Lang        entities.ProgrammingLanguage
	Datasources []string
	Config      entities.ManagerConfig
	MatchPaths  []string
}

var _ repositories.ManagerRepository = (*StubManagerRepository)(nil)

func (m *StubManagerRepository) Name() string                          { return m.ManagerName }
func (m *StubManagerRepository) Language() entities.ProgrammingLanguage { return m.Lang }
func (m *StubManagerRepository) SupportedDatasources() []string         { return m.Datasources }
func (m *StubManagerRepository) DefaultConfig() entities.ManagerConfig  { return m.Config }

func (m *StubManagerRepository) Matches(path string) bool {
	for _, p := range m.MatchPaths {
		if p == path {
			return true
		}
	}
	return false
}
