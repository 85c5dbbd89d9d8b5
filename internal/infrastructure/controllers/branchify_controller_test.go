//go:build unit

package controllers //nolint:testpackage // tests unexported writer wiring

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autobranch/internal/domain/commands"
	"github.com/rios0rios0/autobranch/internal/domain/entities"
	"github.com/rios0rios0/autobranch/test/domain/commanddoubles"
	doubles "github.com/rios0rios0/autobranch/test/infrastructure/repositorydoubles"
)

func newBranchifyCobra(t *testing.T, controller *BranchifyController, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "branchify"}
	cmd.Flags().StringP("config", "c", "", "")
	controller.AddFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "autobranch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestBranchifyControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should pass settings and package files to the command and print JSON", func(t *testing.T) {
		t.Parallel()

		// given
		packageFiles := entities.PackageFiles{"values.yaml": {{Manager: "helm-values"}}}
		stub := &commanddoubles.StubBranchifyCommand{Result: &entities.BranchifyResult{
			Branches:   []entities.BranchConfig{{BranchName: "autobranch/nginx", Title: "Update nginx"}},
			BranchList: []string{"autobranch/nginx"},
		}}
		loader := &doubles.StubPackageFileRepository{PackageFiles: packageFiles}
		out := &bytes.Buffer{}
		controller := &BranchifyController{command: stub, packageFiles: loader, out: out}
		cfg := writeSettings(t, "repo_is_onboarded: false\n")
		cmd := newBranchifyCobra(t, controller, "--config", cfg, "--onboarded", "--output", "json")

		// when
		controller.Execute(cmd, []string{"packages.yaml"})

		// then
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.True(t, stub.LastSettings.RepoIsOnboarded)
		assert.Equal(t, packageFiles, stub.LastPackageFiles)
		assert.Equal(t, []string{"packages.yaml"}, loader.LoadedPaths)

		var printed entities.BranchifyResult
		require.NoError(t, json.Unmarshal(out.Bytes(), &printed))
		assert.Equal(t, []string{"autobranch/nginx"}, printed.BranchList)
	})

	t.Run("should override release note settings from flags", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubBranchifyCommand{Result: &entities.BranchifyResult{}}
		controller := &BranchifyController{
			command:      stub,
			packageFiles: &doubles.StubPackageFileRepository{},
			out:          &bytes.Buffer{},
		}
		cfg := writeSettings(t, "fetch_release_notes: false\n")
		cmd := newBranchifyCobra(t, controller,
			"--config", cfg, "--fetch-release-notes", "--changelog-dir", "/srv/changelogs")

		// when
		controller.Execute(cmd, []string{"packages.yaml"})

		// then
		require.Equal(t, 1, stub.ExecuteCallCount)
		assert.True(t, stub.LastSettings.FetchReleaseNotes)
		assert.Equal(t, "/srv/changelogs", stub.LastSettings.ChangelogDir)
	})

	t.Run("should not run the command when package files cannot be loaded", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubBranchifyCommand{}
		controller := &BranchifyController{
			command:      stub,
			packageFiles: &doubles.StubPackageFileRepository{LoadErr: errors.New("missing")},
			out:          &bytes.Buffer{},
		}
		cmd := newBranchifyCobra(t, controller, "--config", writeSettings(t, "{}\n"))

		// when
		controller.Execute(cmd, []string{"packages.yaml"})

		// then
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should not print anything when the command fails", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubBranchifyCommand{ExecuteErr: errors.New("boom")}
		out := &bytes.Buffer{}
		controller := &BranchifyController{
			command:      stub,
			packageFiles: &doubles.StubPackageFileRepository{},
			out:          out,
		}
		cmd := newBranchifyCobra(t, controller, "--config", writeSettings(t, "{}\n"))

		// when
		controller.Execute(cmd, []string{"packages.yaml"})

		// then
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Empty(t, out.String())
	})

	t.Run("should reject a missing argument", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubBranchifyCommand{}
		controller := &BranchifyController{command: stub, packageFiles: &doubles.StubPackageFileRepository{}, out: &bytes.Buffer{}}
		cmd := newBranchifyCobra(t, controller)

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Zero(t, stub.ExecuteCallCount)
	})
}

func TestResultPrinterPrint(t *testing.T) {
	t.Parallel()

	result := &entities.BranchifyResult{
		Warnings: []entities.ValidationMessage{{Topic: "deps", Message: "deprecated"}},
		Branches: []entities.BranchConfig{{
			BranchName: "autobranch/lodash",
			Title:      "Update dependency lodash to 4.17.21",
			Upgrades: []entities.Update{{
				PackageFile: "package.json", DepName: "lodash", CurrentValue: "4.0.0", NewValue: "4.17.21",
			}},
		}},
		BranchList: []string{"autobranch/lodash"},
	}

	t.Run("should print branches as text", func(t *testing.T) {
		t.Parallel()

		// given
		out := &bytes.Buffer{}

		// when
		err := NewResultPrinter(out, formatText).Print(result)

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "warning: deps: deprecated")
		assert.Contains(t, out.String(), "1 branch(es)")
		assert.Contains(t, out.String(), "autobranch/lodash")
		assert.Contains(t, out.String(), "package.json lodash: 4.0.0 -> 4.17.21")
	})

	t.Run("should print YAML", func(t *testing.T) {
		t.Parallel()

		// given
		out := &bytes.Buffer{}

		// when
		err := NewResultPrinter(out, formatYAML).Print(result)

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "branchList:")
		assert.Contains(t, out.String(), "- autobranch/lodash")
	})

	t.Run("should reject unknown formats", func(t *testing.T) {
		t.Parallel()

		// when
		err := NewResultPrinter(&bytes.Buffer{}, "xml").Print(result)

		// then
		require.ErrorContains(t, err, "unknown output format")
	})
}

func TestManagersControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should print every manager", func(t *testing.T) {
		t.Parallel()

		// given
		out := &bytes.Buffer{}
		controller := &ManagersController{
			command: &commanddoubles.StubListManagersCommand{Summaries: []commands.ManagerSummary{{
				Name:                 "pyenv",
				Language:             entities.LanguagePython,
				SupportedDatasources: []string{"docker"},
				DefaultConfig: entities.ManagerConfig{
					FileMatch:  []string{`(^|/).python-version$`},
					Versioning: "docker",
				},
			}}},
			out: out,
		}

		// when
		controller.Execute(&cobra.Command{}, nil)

		// then
		assert.Contains(t, out.String(), "pyenv")
		assert.Contains(t, out.String(), "Language:    python")
		assert.Contains(t, out.String(), "Versioning:  docker")
	})
}
