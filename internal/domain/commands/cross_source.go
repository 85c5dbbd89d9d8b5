package commands

import (
	"fmt"
	"net/url"

	"github.com/rios0rios0/autobranch/internal/domain/entities"
)

type releaseKey struct {
	sourceURL  string
	newVersion string
}

// findCrossSourceSplits returns every (sourceUrl, newVersion) pair that appears in
// more than one branch, in the order the pairs were first met. Branches without
// a sourceUrl or a newVersion are ignored. For each branch only the first depName
// is recorded.
func findCrossSourceSplits(branches []entities.BranchConfig) ([]entities.CrossSourceSplit, error) {
	var order []releaseKey
	found := make(map[releaseKey]*entities.CrossSourceSplit)

	for _, branch := range branches {
		if branch.SourceURL == "" || branch.NewVersion == "" {
			continue
		}
		if _, err := url.Parse(branch.SourceURL); err != nil {
			return nil, fmt.Errorf("branch %q has a malformed sourceUrl: %w", branch.BranchName, err)
		}

		key := releaseKey{sourceURL: branch.SourceURL, newVersion: branch.NewVersion}
		split, ok := found[key]
		if !ok {
			split = &entities.CrossSourceSplit{
				SourceURL:  branch.SourceURL,
				NewVersion: branch.NewVersion,
				Branches:   make(map[string]string),
			}
			found[key] = split
			order = append(order, key)
		}

		if _, exists := split.Branches[branch.BranchName]; !exists {
			split.Branches[branch.BranchName] = branch.DepName
			split.BranchOrder = append(split.BranchOrder, branch.BranchName)
		}
	}

	var splits []entities.CrossSourceSplit
	for _, key := range order {
		if len(found[key].Branches) > 1 {
			splits = append(splits, *found[key])
		}
	}
	return splits, nil
}
