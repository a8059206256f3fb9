package output

import (
	"encoding/json"
	"fmt"

	"github.com/digitalocean/godo"
)

// JSONFormatter formats droplets as JSON.
type JSONFormatter struct{}

// FormatDroplets formats droplets as a JSON array of objects keyed by
// attribute name.
func (f *JSONFormatter) FormatDroplets(droplets []godo.Droplet, attributes []string) (string, error) {
	recs, err := records(droplets, attributes)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal droplets to JSON: %w", err)
	}

	return string(data) + "\n", nil
}
