package droplet

import (
	"context"

	"github.com/digitalocean/godo"

	"github.com/jbweber/dop/internal/prompt"
)

// dropletsService defines the droplet API calls dop needs.
//
// In production, this is satisfied by godo.DropletsService.
// In tests, this is satisfied by mock implementations.
type dropletsService interface {
	// List lists one page of droplets
	List(ctx context.Context, opt *godo.ListOptions) ([]godo.Droplet, *godo.Response, error)

	// Create creates a single droplet
	Create(ctx context.Context, req *godo.DropletCreateRequest) (*godo.Droplet, *godo.Response, error)

	// Delete destroys a droplet by ID
	Delete(ctx context.Context, dropletID int) (*godo.Response, error)
}

// keysService defines the SSH key API calls dop needs.
//
// In production, this is satisfied by godo.KeysService.
type keysService interface {
	// List lists one page of SSH keys
	List(ctx context.Context, opt *godo.ListOptions) ([]godo.Key, *godo.Response, error)
}

// Terminal is the user-facing side of a bulk action.
//
// In production, this is satisfied by *prompt.Terminal.
type Terminal interface {
	// Confirm asks a yes/no question
	Confirm(message string) (bool, error)

	// Notice prints an informational message
	Notice(message string)

	// StartProgress starts a progress indicator for total items
	StartProgress(label string, total int) prompt.Reporter
}
