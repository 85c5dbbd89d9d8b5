package changelog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/autobranch/internal/domain/entities"
	"github.com/rios0rios0/autobranch/internal/domain/repositories"
)

const (
	changelogFileName = "CHANGELOG.md"
	unreleasedVersion = "Unreleased"
	h2Prefix          = "## ["
)

// releaseHeading matches "## [1.2.3] - 2026-01-01" style Keep-a-Changelog headings.
var releaseHeading = regexp.MustCompile(`^## \[([^\]]+)\](?:\s*-\s*(\S+))?`)

// FileChangelogRepository embeds release notes read from a local mirror of
// Keep-a-Changelog files laid out as <root>/<host>/<owner>/<repo>/CHANGELOG.md.
type FileChangelogRepository struct {
	root string
}

var _ repositories.ChangelogRepository = (*FileChangelogRepository)(nil)

// NewFileChangelogRepository creates a repository rooted at the given directory.
// An empty root disables embedding.
func NewFileChangelogRepository(root string) *FileChangelogRepository {
	return &FileChangelogRepository{root: root}
}

// Embed sets LogJSON on every update whose changelog has released sections between
// its current and new version. Updates without a changelog are left untouched.
func (r *FileChangelogRepository) Embed(ctx context.Context, upgrades *entities.BranchUpgrades) error {
	if r.root == "" {
		return nil
	}

	parsed := make(map[string][]entities.ReleaseVersion)
	for _, branchName := range upgrades.Names() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("embedding changelogs for %q aborted: %w", branchName, err)
		}

		current := upgrades.Get(branchName)
		embedded := make([]entities.Update, len(current))
		copy(embedded, current)

		for i := range embedded {
			notes, err := r.releaseNotes(parsed, embedded[i])
			if err != nil {
				return err
			}
			if notes != nil {
				embedded[i].LogJSON = notes
			}
		}
		upgrades.Set(branchName, embedded)
	}
	return nil
}

func (r *FileChangelogRepository) releaseNotes(
	parsed map[string][]entities.ReleaseVersion,
	update entities.Update,
) (*entities.ReleaseNotes, error) {
	if update.SourceURL == "" || update.NewVersion == "" {
		return nil, nil
	}

	releases, ok := parsed[update.SourceURL]
	if !ok {
		var err error
		releases, err = r.readReleases(update.SourceURL)
		if err != nil {
			return nil, err
		}
		parsed[update.SourceURL] = releases
	}

	fromVersion := update.CurrentVersion
	if fromVersion == "" {
		fromVersion = update.CurrentValue
	}
	versions := selectReleases(releases, fromVersion, update.NewVersion)
	if len(versions) == 0 {
		return nil, nil
	}
	return &entities.ReleaseNotes{Project: update.SourceURL, Versions: versions}, nil
}

// readReleases loads and parses the changelog mirrored for sourceURL. A missing
// file is not an error.
func (r *FileChangelogRepository) readReleases(sourceURL string) ([]entities.ReleaseVersion, error) {
	path, err := r.changelogPath(sourceURL)
	if err != nil {
		logger.Debugf("Skipping release notes for %q: %v", sourceURL, err)
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debugf("No changelog found for %q at %q", sourceURL, path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read changelog %q: %w", path, err)
	}
	return parseReleases(string(data)), nil
}

func (r *FileChangelogRepository) changelogPath(sourceURL string) (string, error) {
	parsed, err := url.Parse(sourceURL)
	if err != nil {
		return "", fmt.Errorf("invalid source URL: %w", err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("source URL %q has no host", sourceURL)
	}

	repoPath := strings.TrimSuffix(strings.Trim(parsed.Path, "/"), ".git")
	if repoPath == "" || strings.Contains(repoPath, "..") {
		return "", fmt.Errorf("source URL %q has no repository path", sourceURL)
	}
	return filepath.Join(r.root, parsed.Host, filepath.FromSlash(repoPath), changelogFileName), nil
}

// parseReleases returns every released section of a Keep-a-Changelog document in
// file order, skipping the Unreleased section.
func parseReleases(content string) []entities.ReleaseVersion {
	lines := strings.Split(content, "\n")

	var releases []entities.ReleaseVersion
	for i := 0; i < len(lines); i++ {
		match := releaseHeading.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if match == nil {
			continue
		}

		next := findNextH2Index(lines, i)
		if match[1] != unreleasedVersion {
			releases = append(releases, entities.ReleaseVersion{
				Version: match[1],
				Date:    match[2],
				Body:    strings.TrimSpace(strings.Join(lines[i+1:next], "\n")),
			})
		}
		i = next - 1
	}
	return releases
}

// findNextH2Index returns the line index of the next "## [" heading after
// startIdx, or len(lines) if there is none.
func findNextH2Index(lines []string, startIdx int) int {
	for i := startIdx + 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), h2Prefix) {
			return i
		}
	}
	return len(lines)
}

// selectReleases keeps the releases with from < version <= to. Unparseable
// versions are ignored. An unparseable from keeps everything up to to.
func selectReleases(releases []entities.ReleaseVersion, from, to string) []entities.ReleaseVersion {
	upper := canonical(to)
	if upper == "" {
		return nil
	}
	lower := canonical(from)

	var selected []entities.ReleaseVersion
	for _, release := range releases {
		version := canonical(release.Version)
		if version == "" {
			continue
		}
		if semver.Compare(version, upper) > 0 {
			continue
		}
		if lower != "" && semver.Compare(version, lower) <= 0 {
			continue
		}
		selected = append(selected, release)
	}
	return selected
}

// canonical turns "1.2" or "v1.2.0" into "v1.2.0", or "" when not a semantic version.
func canonical(version string) string {
	v := "v" + strings.TrimPrefix(strings.TrimSpace(version), "v")
	if !semver.IsValid(v) {
		return ""
	}
	return semver.Canonical(v)
}
