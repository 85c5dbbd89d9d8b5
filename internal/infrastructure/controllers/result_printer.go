package controllers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/autobranch/internal/domain/entities"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// ResultPrinter renders a BranchifyResult in one of the supported formats.
type ResultPrinter struct {
	out    io.Writer
	format string
}

// NewResultPrinter creates a printer for the given format.
func NewResultPrinter(out io.Writer, format string) *ResultPrinter {
	return &ResultPrinter{out: out, format: format}
}

// Print writes the result. Unknown formats are rejected.
func (p *ResultPrinter) Print(result *entities.BranchifyResult) error {
	switch p.format {
	case formatJSON:
		encoder := json.NewEncoder(p.out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case formatYAML:
		encoder := yaml.NewEncoder(p.out)
		defer encoder.Close()
		return encoder.Encode(result)
	case formatText, "":
		return p.printText(result)
	default:
		return fmt.Errorf("unknown output format %q", p.format)
	}
}

func (p *ResultPrinter) printText(result *entities.BranchifyResult) error {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	warn := color.New(color.FgYellow)
	fail := color.New(color.FgRed)

	for _, msg := range result.Errors {
		if _, err := fail.Fprintf(p.out, "error: %s: %s\n", msg.Topic, msg.Message); err != nil {
			return err
		}
	}
	for _, msg := range result.Warnings {
		if _, err := warn.Fprintf(p.out, "warning: %s: %s\n", msg.Topic, msg.Message); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(p.out, "%d branch(es)\n", len(result.Branches)); err != nil {
		return err
	}
	for _, branch := range result.Branches {
		if _, err := bold.Fprintf(p.out, "%s\n", branch.BranchName); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(p.out, "  %s\n", branch.Title); err != nil {
			return err
		}
		for _, upgrade := range branch.Upgrades {
			if _, err := faint.Fprintf(p.out, "  - %s %s: %s -> %s\n",
				upgrade.PackageFile, upgrade.DepName, upgrade.CurrentValue, upgrade.NewValue); err != nil {
				return err
			}
		}
	}
	return nil
}
