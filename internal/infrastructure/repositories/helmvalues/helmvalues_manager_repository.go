package helmvalues

import (
	"regexp"

	"github.com/rios0rios0/autobranch/internal/domain/entities"
	"github.com/rios0rios0/autobranch/internal/domain/repositories"
)

const (
	managerName        = "helm-values"
	datasourceDocker   = "docker"
	commitMessageTopic = "helm values {{depName}}"
)

var fileMatch = []string{`(^|/)values.yaml$`} //nolint:gochecknoglobals // manager descriptor

// ManagerRepository describes the helm-values manager, which tracks container
// images referenced from Helm chart values.yaml files.
type ManagerRepository struct {
	patterns []*regexp.Regexp
}

var _ repositories.ManagerRepository = (*ManagerRepository)(nil)

// NewManagerRepository creates the helm-values manager descriptor.
func NewManagerRepository() *ManagerRepository {
	patterns := make([]*regexp.Regexp, 0, len(fileMatch))
	for _, expr := range fileMatch {
		patterns = append(patterns, regexp.MustCompile(expr))
	}
	return &ManagerRepository{patterns: patterns}
}

func (m *ManagerRepository) Name() string { return managerName }

func (m *ManagerRepository) Language() entities.ProgrammingLanguage {
	return entities.LanguageNone
}

func (m *ManagerRepository) SupportedDatasources() []string {
	return []string{datasourceDocker}
}

func (m *ManagerRepository) DefaultConfig() entities.ManagerConfig {
	pinDigests := false
	return entities.ManagerConfig{
		FileMatch:          append([]string(nil), fileMatch...),
		CommitMessageTopic: commitMessageTopic,
		PinDigests:         &pinDigests,
	}
}

func (m *ManagerRepository) Matches(path string) bool {
	for _, pattern := range m.patterns {
		if pattern.MatchString(path) {
			return true
		}
	}
	return false
}
