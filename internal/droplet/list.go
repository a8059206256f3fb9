package droplet

import (
	"context"
	"fmt"
	"log"

	"github.com/digitalocean/godo"
)

// pageSize is the number of items requested per API page (the API maximum).
const pageSize = 200

// ListAll lists every droplet in the account.
func (c *Client) ListAll(ctx context.Context) ([]godo.Droplet, error) {
	log.Printf("Listing droplets...")
	droplets, err := listAllPages(ctx, c.droplets.List)
	if err != nil {
		return nil, fmt.Errorf("failed to list droplets: %w", err)
	}
	log.Printf("Found %d droplet(s)", len(droplets))
	return droplets, nil
}

// ListKeys lists every SSH key registered in the account.
func (c *Client) ListKeys(ctx context.Context) ([]godo.Key, error) {
	log.Printf("Listing SSH keys...")
	keys, err := listAllPages(ctx, c.keys.List)
	if err != nil {
		return nil, fmt.Errorf("failed to list SSH keys: %w", err)
	}
	return keys, nil
}

// listAllPages follows the API's page links until the last page.
func listAllPages[T any](ctx context.Context, fetch func(context.Context, *godo.ListOptions) ([]T, *godo.Response, error)) ([]T, error) {
	opt := &godo.ListOptions{PerPage: pageSize}
	var all []T

	for {
		items, resp, err := fetch(ctx, opt)
		if err != nil {
			return nil, err
		}

		// append the current page's items to our list
		all = append(all, items...)

		// if we are at the last page, stop
		if resp == nil || resp.Links == nil || resp.Links.IsLastPage() {
			break
		}

		page, err := resp.Links.CurrentPage()
		if err != nil {
			return nil, fmt.Errorf("failed to read current page: %w", err)
		}

		// set the page we want for the next request
		opt.Page = page + 1
	}

	return all, nil
}

// names returns the names of droplets in order.
func names(droplets []godo.Droplet) []string {
	out := make([]string, 0, len(droplets))
	for _, d := range droplets {
		out = append(out, d.Name)
	}
	return out
}
