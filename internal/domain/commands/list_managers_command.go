package commands

import (
	"github.com/rios0rios0/autobranch/internal/domain/entities"
	"github.com/rios0rios0/autobranch/internal/domain/repositories"
)

// ManagerSummary is the listing view of a registered manager.
type ManagerSummary struct {
	Name                 string
	Language             entities.ProgrammingLanguage
	SupportedDatasources []string
	DefaultConfig        entities.ManagerConfig
}

// ManagerLister is the source of registered managers.
type ManagerLister interface {
	All() []repositories.ManagerRepository
}

// ListManagers is the interface for the managers command.
type ListManagers interface {
	Execute() []ManagerSummary
}

// ListManagersCommand summarizes every registered manager descriptor.
type ListManagersCommand struct {
	managers ManagerLister
}

// NewListManagersCommand creates a new ListManagersCommand.
func NewListManagersCommand(managers ManagerLister) *ListManagersCommand {
	return &ListManagersCommand{managers: managers}
}

// Execute returns the managers in name order.
func (it *ListManagersCommand) Execute() []ManagerSummary {
	all := it.managers.All()
	summaries := make([]ManagerSummary, 0, len(all))
	for _, manager := range all {
		summaries = append(summaries, ManagerSummary{
			Name:                 manager.Name(),
			Language:             manager.Language(),
			SupportedDatasources: manager.SupportedDatasources(),
			DefaultConfig:        manager.DefaultConfig(),
		})
	}
	return summaries
}
