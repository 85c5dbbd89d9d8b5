//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/autobranch/internal/domain/commands"
)

// StubListManagersCommand is a stub implementation of commands.ListManagers.
type StubListManagersCommand struct {
	Summaries []commands.ManagerSummary
}

var _ commands.ListManagers = (*StubListManagersCommand)(nil)

func (s *StubListManagersCommand) Execute() []commands.ManagerSummary {
	return s.Summaries
}
