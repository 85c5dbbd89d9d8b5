//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/autobranch/internal/domain/commands"
	"github.com/rios0rios0/autobranch/internal/domain/entities"
)

// StubBranchifyCommand is a stub implementation of commands.Branchify.
type StubBranchifyCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *entities.BranchifyResult
	LastSettings     *entities.Settings
	LastPackageFiles entities.PackageFiles
}

var _ commands.Branchify = (*StubBranchifyCommand)(nil)

func (s *StubBranchifyCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	packageFiles entities.PackageFiles,
) (*entities.BranchifyResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastPackageFiles = packageFiles
	return s.Result, s.ExecuteErr
}
