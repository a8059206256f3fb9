// Package userdata loads the user-data passed to new droplets.
//
// Droplets accept any user-data cloud-init understands: cloud-config
// documents, shell scripts, MIME multipart. Only cloud-config documents are
// checked locally, since a YAML mistake there silently produces a droplet
// without the intended configuration.
//
// See https://cloudinit.readthedocs.io/en/latest/explanation/format.html
package userdata

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// CloudConfigHeader is the first line of a cloud-config document.
const CloudConfigHeader = "#cloud-config"

// Load reads user-data from path and validates it.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read user-data file: %w", err)
	}

	if err := Validate(data); err != nil {
		return "", fmt.Errorf("invalid user-data in %s: %w", path, err)
	}

	return string(data), nil
}

// Validate checks user-data content. Empty content is rejected; a
// cloud-config document must be a YAML mapping; anything else is accepted
// as-is.
func Validate(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("user-data is empty")
	}

	if !IsCloudConfig(data) {
		return nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse cloud-config YAML: %w", err)
	}

	// A header-only document decodes to an empty node, which cloud-init accepts.
	if len(doc.Content) == 0 {
		return nil
	}
	if doc.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("cloud-config must be a YAML mapping")
	}

	return nil
}

// IsCloudConfig reports whether data starts with the cloud-config header.
func IsCloudConfig(data []byte) bool {
	firstLine, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimRight(firstLine, " \t\r") == CloudConfigHeader
}
