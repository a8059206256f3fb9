// Package catalog holds the droplet sizes and regions the CLI accepts.
//
// The lists are fixed rather than fetched from the API so that flag
// validation and the "list sizes"/"list regions" commands work without a
// token.
package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Sizes are the droplet size slugs accepted by "droplet create".
var Sizes = []string{
	"512mb",
	"1gb",
	"2gb",
	"4gb",
	"8gb",
	"16gb",
	"32gb",
	"48gb",
	"64gb",
}

// Regions are the region slugs accepted by "droplet create".
var Regions = []string{
	"nyc1",
	"nyc2",
	"nyc3",
	"ams1",
	"ams2",
	"ams3",
	"sfo1",
	"sgp1",
	"lon1",
}

const (
	// DefaultSize is used when no size is given.
	DefaultSize = "2gb"
	// DefaultRegion is used when no region is given.
	DefaultRegion = "ams3"
)

// ValidSize reports whether slug is a known size.
func ValidSize(slug string) bool {
	return slices.Contains(Sizes, slug)
}

// ValidRegion reports whether slug is a known region.
func ValidRegion(slug string) bool {
	return slices.Contains(Regions, slug)
}

// ValidateChoice returns an error naming the allowed values when value is
// not one of choices. kind is used in the message ("size", "region").
func ValidateChoice(kind, value string, choices []string) error {
	if slices.Contains(choices, value) {
		return nil
	}
	return fmt.Errorf("invalid %s %q (choose from %s)", kind, value, strings.Join(choices, ", "))
}

// ValidateSize checks slug against Sizes.
func ValidateSize(slug string) error {
	return ValidateChoice("size", slug, Sizes)
}

// ValidateRegion checks slug against Regions.
func ValidateRegion(slug string) error {
	return ValidateChoice("region", slug, Regions)
}
