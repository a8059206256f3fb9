package output

import (
	"fmt"

	"github.com/digitalocean/godo"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats droplets as YAML.
type YAMLFormatter struct{}

// FormatDroplets formats droplets as a YAML sequence of mappings.
func (f *YAMLFormatter) FormatDroplets(droplets []godo.Droplet, attributes []string) (string, error) {
	recs, err := records(droplets, attributes)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(recs)
	if err != nil {
		return "", fmt.Errorf("failed to marshal droplets to YAML: %w", err)
	}

	return string(data), nil
}
