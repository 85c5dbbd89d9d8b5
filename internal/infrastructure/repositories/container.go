package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/autobranch/internal/domain/repositories"
	"github.com/rios0rios0/autobranch/internal/infrastructure/repositories/changelog"
	"github.com/rios0rios0/autobranch/internal/infrastructure/repositories/flattener"
	hvRepo "github.com/rios0rios0/autobranch/internal/infrastructure/repositories/helmvalues"
	"github.com/rios0rios0/autobranch/internal/infrastructure/repositories/packagefiles"
	pyenvRepo "github.com/rios0rios0/autobranch/internal/infrastructure/repositories/pyenv"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register manager registry with all manager descriptors
	if err := container.Provide(func() *ManagerRegistry {
		reg := NewManagerRegistry()
		reg.Register(hvRepo.NewManagerRepository())
		reg.Register(pyenvRepo.NewManagerRepository())
		return reg
	}); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *ManagerRegistry) domainRepos.ManagerCatalog {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(managers domainRepos.ManagerCatalog) domainRepos.UpdateFlattener {
		return flattener.NewUpdateFlattener(managers)
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.PackageFileRepository {
		return packagefiles.NewYAMLPackageFileRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.ChangelogFactory {
		return func(location string) domainRepos.ChangelogRepository {
			return changelog.NewFileChangelogRepository(location)
		}
	}); err != nil {
		return err
	}

	return nil
}
