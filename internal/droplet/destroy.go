package droplet

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/digitalocean/godo"
)

// Selector chooses droplets to destroy. A droplet matches when any
// criterion matches it.
type Selector struct {
	// All matches every droplet.
	All bool

	// IDs match droplets by exact ID.
	IDs []int

	// Names match droplets by exact name.
	Names []string

	// Prefixes match droplets whose name starts with any prefix.
	Prefixes []string
}

// Matches reports whether d is selected.
func (s Selector) Matches(d godo.Droplet) bool {
	if s.All {
		return true
	}
	if slices.Contains(s.IDs, d.ID) {
		return true
	}
	if slices.Contains(s.Names, d.Name) {
		return true
	}
	for _, prefix := range s.Prefixes {
		if strings.HasPrefix(d.Name, prefix) {
			return true
		}
	}
	return false
}

// Filter returns the selected droplets, keeping their order.
func (s Selector) Filter(droplets []godo.Droplet) []godo.Droplet {
	var selected []godo.Droplet
	for _, d := range droplets {
		if s.Matches(d) {
			selected = append(selected, d)
		}
	}
	return selected
}

// SelectForDestroy lists droplets and returns those matching sel.
func (c *Client) SelectForDestroy(ctx context.Context, sel Selector) ([]godo.Droplet, error) {
	return selectWithDeps(ctx, sel, c.droplets)
}

// Destroy destroys the droplets matching sel after confirmation.
//
// Returns an error if listing fails or any destroy call fails.
func (c *Client) Destroy(ctx context.Context, sel Selector, opts BulkOptions, term Terminal) (Result, error) {
	return destroyWithDeps(ctx, sel, opts, c.droplets, term)
}

// destroyWithDeps destroys droplets with injected dependencies.
func destroyWithDeps(ctx context.Context, sel Selector, opts BulkOptions, ds dropletsService, term Terminal) (Result, error) {
	targets, err := selectWithDeps(ctx, sel, ds)
	if err != nil {
		return Result{}, err
	}

	action := bulkAction{
		verb:  actionDestroy,
		names: names(targets),
		apply: func(ctx context.Context, i int) error {
			_, err := ds.Delete(ctx, targets[i].ID)
			return err
		},
	}

	return runBulk(ctx, action, term, opts)
}

// selectWithDeps lists droplets and filters them with injected dependencies.
func selectWithDeps(ctx context.Context, sel Selector, ds dropletsService) ([]godo.Droplet, error) {
	all, err := listAllPages(ctx, ds.List)
	if err != nil {
		return nil, fmt.Errorf("failed to list droplets: %w", err)
	}

	selected := sel.Filter(all)
	log.Printf("Selected %d of %d droplet(s)", len(selected), len(all))
	return selected, nil
}
