package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/oascan/pkg/errors"
)

// GenerateConfigContent returns a project file template: the embedded
// defaults with every assignment commented out
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultConfigContent())
}

// WriteProjectConfig writes the template to dir/.oascan.toml. An existing
// file is kept unless force is set.
func WriteProjectConfig(dir string, force bool) (string, error) {
	path := filepath.Join(dir, ProjectConfigNames[0])
	if !force && fileExists(path) {
		return path, errors.Newf(errors.ErrInvalidInput, "%s already exists", path).WithDetail("path", path)
	}
	if err := os.WriteFile(path, []byte(GenerateConfigContent()), 0o644); err != nil {
		return path, errors.Wrapf(err, errors.ErrFileAccess, "failed to write %s", path).WithDetail("path", path)
	}
	return path, nil
}

// commentOutConfigValues comments out every line that is not blank, a
// comment or a table header
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
