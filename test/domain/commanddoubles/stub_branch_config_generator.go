//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/autobranch/internal/domain/commands"
	"github.com/rios0rios0/autobranch/internal/domain/entities"
)

// SpyBranchConfigGenerator returns Template with the received upgrades attached.
type SpyBranchConfigGenerator struct {
	Template entities.BranchConfig
	Calls    [][]entities.Update
}

var _ commands.BranchConfigGenerator = (*SpyBranchConfigGenerator)(nil)

func (g *SpyBranchConfigGenerator) Generate(upgrades []entities.Update) entities.BranchConfig {
	g.Calls = append(g.Calls, upgrades)
	branch := g.Template
	branch.Upgrades = upgrades
	return branch
}
