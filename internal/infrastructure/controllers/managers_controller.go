package controllers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/autobranch/internal/domain/commands"
	"github.com/rios0rios0/autobranch/internal/domain/entities"
)

// ManagersController handles the "managers" subcommand.
type ManagersController struct {
	command commands.ListManagers
	out     io.Writer
}

// NewManagersController creates a new ManagersController writing to stdout.
func NewManagersController(command commands.ListManagers) *ManagersController {
	return &ManagersController{command: command, out: os.Stdout}
}

// GetBind returns the Cobra command metadata for the managers controller.
func (it *ManagersController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "managers",
		Short: "List the registered package managers",
		Long: `List every package manager this build knows about, with the manifests
it matches and the datasources and versioning scheme it relies on.`,
	}
}

// Execute prints every registered manager.
func (it *ManagersController) Execute(_ *cobra.Command, _ []string) {
	bold := color.New(color.Bold)
	for _, manager := range it.command.Execute() {
		_, _ = bold.Fprintf(it.out, "%s\n", manager.Name)
		if manager.Language != entities.LanguageNone {
			_, _ = fmt.Fprintf(it.out, "  Language:    %s\n", manager.Language)
		}
		_, _ = fmt.Fprintf(it.out, "  Datasources: %s\n", strings.Join(manager.SupportedDatasources, ", "))
		_, _ = fmt.Fprintf(it.out, "  File match:  %s\n", strings.Join(manager.DefaultConfig.FileMatch, ", "))
		if manager.DefaultConfig.Versioning != "" {
			_, _ = fmt.Fprintf(it.out, "  Versioning:  %s\n", manager.DefaultConfig.Versioning)
		}
		if manager.DefaultConfig.CommitMessageTopic != "" {
			_, _ = fmt.Fprintf(it.out, "  Topic:       %s\n", manager.DefaultConfig.CommitMessageTopic)
		}
	}
}
