package packagefiles

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/autobranch/internal/domain/entities"
	"github.com/rios0rios0/autobranch/internal/domain/repositories"
)

// YAMLPackageFileRepository reads extracted package files from a YAML or JSON document
// whose top level maps manifest paths to package entries.
type YAMLPackageFileRepository struct{}

var _ repositories.PackageFileRepository = (*YAMLPackageFileRepository)(nil)

// NewYAMLPackageFileRepository creates the file-backed package file loader.
func NewYAMLPackageFileRepository() *YAMLPackageFileRepository {
	return &YAMLPackageFileRepository{}
}

// Load parses the document at path. An empty document yields an empty map.
func (r *YAMLPackageFileRepository) Load(path string) (entities.PackageFiles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read package files %q: %w", path, err)
	}

	packageFiles := entities.PackageFiles{}
	if unmarshalErr := yaml.Unmarshal(data, &packageFiles); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse package files %q: %w", path, unmarshalErr)
	}
	if packageFiles == nil {
		packageFiles = entities.PackageFiles{}
	}
	return packageFiles, nil
}
