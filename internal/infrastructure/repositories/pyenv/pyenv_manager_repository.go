package pyenv

import (
	"regexp"

	"github.com/rios0rios0/autobranch/internal/domain/entities"
	"github.com/rios0rios0/autobranch/internal/domain/repositories"
)

const (
	managerName      = "pyenv"
	datasourceDocker = "docker"
	versioningDocker = "docker"
)

// fileMatch matches the .python-version files pyenv reads.
var fileMatch = []string{`(^|/).python-version$`} //nolint:gochecknoglobals // manager descriptor

// ManagerRepository describes the pyenv manager. Python versions pinned in
// .python-version are resolved against the official python Docker image tags.
type ManagerRepository struct {
	patterns []*regexp.Regexp
}

var _ repositories.ManagerRepository = (*ManagerRepository)(nil)

// NewManagerRepository creates the pyenv manager descriptor.
func NewManagerRepository() *ManagerRepository {
	patterns := make([]*regexp.Regexp, 0, len(fileMatch))
	for _, expr := range fileMatch {
		patterns = append(patterns, regexp.MustCompile(expr))
	}
	return &ManagerRepository{patterns: patterns}
}

func (m *ManagerRepository) Name() string { return managerName }

func (m *ManagerRepository) Language() entities.ProgrammingLanguage {
	return entities.LanguagePython
}

func (m *ManagerRepository) SupportedDatasources() []string {
	return []string{datasourceDocker}
}

func (m *ManagerRepository) DefaultConfig() entities.ManagerConfig {
	return entities.ManagerConfig{
		FileMatch:  append([]string(nil), fileMatch...),
		Versioning: versioningDocker,
	}
}

// Matches returns true for any path matching one of the fileMatch patterns.
func (m *ManagerRepository) Matches(path string) bool {
	for _, pattern := range m.patterns {
		if pattern.MatchString(path) {
			return true
		}
	}
	return false
}
