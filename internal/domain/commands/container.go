package commands

import (
	"go.uber.org/dig"

	infraRepos "github.com/rios0rios0/autobranch/internal/infrastructure/repositories"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewTemplateBranchConfigGenerator); err != nil {
		return err
	}
	if err := container.Provide(NewBranchifyCommand); err != nil {
		return err
	}
	if err := container.Provide(func(registry *infraRepos.ManagerRegistry) *ListManagersCommand {
		return NewListManagersCommand(registry)
	}); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *TemplateBranchConfigGenerator) BranchConfigGenerator {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *BranchifyCommand) Branchify {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ListManagersCommand) ListManagers {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
