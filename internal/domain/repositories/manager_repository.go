package repositories

import "github.com/rios0rios0/autobranch/internal/domain/entities"

// ManagerRepository describes one package-manager plugin: which manifests it
// owns and which datasource and versioning scheme govern its packages.
type ManagerRepository interface {
	// Name returns the manager identifier (e.g. "pyenv", "helm-values").
	Name() string

	// Language returns the ecosystem of the manager, or LanguageNone.
	Language() entities.ProgrammingLanguage

	// SupportedDatasources lists the datasource identifiers the manager can resolve.
	SupportedDatasources() []string

	// DefaultConfig returns the configuration the manager contributes by default.
	DefaultConfig() entities.ManagerConfig

	// Matches returns true if the given manifest path belongs to this manager.
	Matches(path string) bool
}

// PackageFileRepository loads previously extracted package files.
type PackageFileRepository interface {
	Load(path string) (entities.PackageFiles, error)
}

// ManagerCatalog looks up registered managers by name or manifest path.
type ManagerCatalog interface {
	Get(name string) ManagerRepository
	Detect(path string) ManagerRepository
}
