// Package output provides formatters for displaying droplets and SSH keys
// in various formats (table, line, YAML, JSON).
package output

import (
	"fmt"

	"github.com/digitalocean/godo"
)

// Format represents an output format type.
type Format string

const (
	// FormatTable prints one fixed-width row per droplet.
	FormatTable Format = "table"
	// FormatLine prints every value on a single line, for shell use.
	FormatLine Format = "line"
	// FormatYAML is a YAML list of records.
	FormatYAML Format = "yaml"
	// FormatJSON is a JSON array of records for machine consumption.
	FormatJSON Format = "json"
)

// Formatter formats droplets for output.
type Formatter interface {
	// FormatDroplets formats the selected attributes of each droplet.
	FormatDroplets(droplets []godo.Droplet, attributes []string) (string, error)
}

// Options contains options for formatting output.
type Options struct {
	// Format specifies the output format.
	Format Format
}

// NewFormatter creates a new Formatter based on the specified format.
func NewFormatter(opts Options) (Formatter, error) {
	switch opts.Format {
	case FormatTable:
		return &TableFormatter{}, nil
	case FormatLine:
		return &LineFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (supported: table, line, yaml, json)", opts.Format)
	}
}

// ValidateFormat checks if a format string is valid.
func ValidateFormat(format string) error {
	f := Format(format)
	switch f {
	case FormatTable, FormatLine, FormatYAML, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid formats: table, line, yaml, json)", format)
	}
}

// records extracts the selected attributes of every droplet.
func records(droplets []godo.Droplet, attributes []string) ([]Record, error) {
	out := make([]Record, 0, len(droplets))
	for i := range droplets {
		rec, err := DropletFormatter.Record(&droplets[i], attributes)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
