package droplet

import (
	"context"
	"errors"
	"fmt"

	"github.com/digitalocean/godo"
)

// ErrNotFound is returned when no droplet has the requested name.
var ErrNotFound = errors.New("droplet not found")

// NotFoundError reports the name no droplet matched. It matches ErrNotFound
// with errors.Is.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNotFound, e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AmbiguousError reports several droplets sharing one name.
type AmbiguousError struct {
	Name string
	IDs  []int
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%d droplets are named %s (ids %v)", len(e.IDs), e.Name, e.IDs)
}

// FindByName returns the single droplet called name.
func (c *Client) FindByName(ctx context.Context, name string) (*godo.Droplet, error) {
	return findByNameWithDeps(ctx, name, c.droplets)
}

// findByNameWithDeps looks up a droplet with injected dependencies.
func findByNameWithDeps(ctx context.Context, name string, ds dropletsService) (*godo.Droplet, error) {
	all, err := listAllPages(ctx, ds.List)
	if err != nil {
		return nil, fmt.Errorf("failed to list droplets: %w", err)
	}

	matched := Selector{Names: []string{name}}.Filter(all)
	switch len(matched) {
	case 0:
		return nil, &NotFoundError{Name: name}
	case 1:
		return &matched[0], nil
	default:
		ids := make([]int, 0, len(matched))
		for _, d := range matched {
			ids = append(ids, d.ID)
		}
		return nil, &AmbiguousError{Name: name, IDs: ids}
	}
}

// SSHAddress returns the public IPv4 address to connect to.
func SSHAddress(d *godo.Droplet) (string, error) {
	ip, err := d.PublicIPv4()
	if err != nil {
		return "", fmt.Errorf("droplet %s has no networks yet: %w", d.Name, err)
	}
	if ip == "" {
		return "", fmt.Errorf("droplet %s has no public IPv4 address", d.Name)
	}
	return ip, nil
}
