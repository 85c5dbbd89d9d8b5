package repositories

import (
	"sort"

	domainRepos "github.com/rios0rios0/autobranch/internal/domain/repositories"
)

// ManagerRegistry manages all registered package-manager descriptors.
type ManagerRegistry struct {
	managers map[string]domainRepos.ManagerRepository
}

// NewManagerRegistry creates an empty manager registry.
func NewManagerRegistry() *ManagerRegistry {
	return &ManagerRegistry{
		managers: make(map[string]domainRepos.ManagerRepository),
	}
}

// Register adds a manager under its name.
func (r *ManagerRegistry) Register(m domainRepos.ManagerRepository) {
	r.managers[m.Name()] = m
}

// Get returns the manager with the given name, or nil if not registered.
func (r *ManagerRegistry) Get(name string) domainRepos.ManagerRepository {
	return r.managers[name]
}

// All returns every registered manager ordered by name.
func (r *ManagerRegistry) All() []domainRepos.ManagerRepository {
	result := make([]domainRepos.ManagerRepository, 0, len(r.managers))
	for _, name := range r.Names() {
		result = append(result, r.managers[name])
	}
	return result
}

// Names returns the sorted list of registered manager names.
func (r *ManagerRegistry) Names() []string {
	names := make([]string, 0, len(r.managers))
	for name := range r.managers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Detect returns the first manager (by name) whose fileMatch accepts the path, or nil.
func (r *ManagerRegistry) Detect(path string) domainRepos.ManagerRepository {
	for _, m := range r.All() {
		if m.Matches(path) {
			return m
		}
	}
	return nil
}
