package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/autobranch/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewBranchifyController); err != nil {
		return err
	}
	if err := container.Provide(NewManagersController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	branchifyController *BranchifyController,
	managersController *ManagersController,
) *[]entities.Controller {
	return &[]entities.Controller{
		branchifyController,
		managersController,
	}
}
