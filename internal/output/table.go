package output

import (
	"strings"

	"github.com/digitalocean/godo"
)

// TableFormatter prints one row per droplet with fixed-width cells.
type TableFormatter struct{}

// FormatDroplets formats droplets as rows of cells joined by a space.
// No header row is printed so the output can be piped.
func (f *TableFormatter) FormatDroplets(droplets []godo.Droplet, attributes []string) (string, error) {
	var b strings.Builder
	for i := range droplets {
		cells, err := DropletFormatter.Format(&droplets[i], attributes, StyleTable)
		if err != nil {
			return "", err
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
	return b.String(), nil
}

// LineFormatter prints every value of every droplet on one line.
//
// Example: with attributes "name,ip" → "node01 10.0.0.1 node02 10.0.0.2"
type LineFormatter struct{}

// FormatDroplets formats droplets as a single space separated line.
func (f *LineFormatter) FormatDroplets(droplets []godo.Droplet, attributes []string) (string, error) {
	var cells []string
	for i := range droplets {
		row, err := DropletFormatter.Format(&droplets[i], attributes, StyleLine)
		if err != nil {
			return "", err
		}
		cells = append(cells, row...)
	}
	return strings.Join(cells, " ") + "\n", nil
}
