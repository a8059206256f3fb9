package droplet

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/digitalocean/godo"
	"github.com/google/uuid"

	"github.com/jbweber/dop/internal/catalog"
	"github.com/jbweber/dop/internal/config"
	"github.com/jbweber/dop/internal/naming"
)

// batchTagPrefix starts the tag shared by droplets created together.
const batchTagPrefix = "dop-batch-"

// CreateOptions describe a batch of droplets to create.
type CreateOptions struct {
	Prefix string
	Count  int

	Size   string
	Region string
	Image  string

	SSHKeys           []int
	PrivateNetworking bool
	UserData          string
	Tags              []string

	// BatchTag is added to every droplet of the batch. Generated when empty.
	BatchTag string

	Bulk BulkOptions
}

// Validate checks the options for errors.
func (o *CreateOptions) Validate() error {
	if len(o.SSHKeys) == 0 {
		return config.ErrMissingSSHKeys
	}
	if o.Count <= 0 {
		return fmt.Errorf("count must be > 0, got %d", o.Count)
	}
	if err := catalog.ValidateSize(o.Size); err != nil {
		return err
	}
	if err := catalog.ValidateRegion(o.Region); err != nil {
		return err
	}
	if o.Image == "" {
		return fmt.Errorf("image is required")
	}
	return nil
}

// CollisionError reports requested names that already belong to droplets.
type CollisionError struct {
	Names []string
}

func (e *CollisionError) Error() string {
	return "droplets with following names already exist: " + strings.Join(e.Names, ", ")
}

// PlanCreate validates opts, checks the requested names against existing
// droplets and returns one create request per new droplet.
//
// Any collision aborts the whole batch with a *CollisionError.
func (c *Client) PlanCreate(ctx context.Context, opts CreateOptions) ([]*godo.DropletCreateRequest, error) {
	return planCreateWithDeps(ctx, opts, c.droplets)
}

// Create creates the droplets described by opts after confirmation.
//
// This orchestrates the batch:
//  1. Validate options and generate names
//  2. Snapshot existing droplets and reject name collisions
//  3. Confirm with the user (unless opts.Bulk.AssumeYes)
//  4. Issue one create call per droplet, pausing opts.Bulk.Delay before each
//
// Returns an error if planning fails or any create call fails.
func (c *Client) Create(ctx context.Context, opts CreateOptions, term Terminal) (Result, error) {
	return createWithDeps(ctx, opts, c.droplets, term)
}

// createWithDeps creates droplets with injected dependencies.
func createWithDeps(ctx context.Context, opts CreateOptions, ds dropletsService, term Terminal) (Result, error) {
	requests, err := planCreateWithDeps(ctx, opts, ds)
	if err != nil {
		return Result{}, err
	}

	requestNames := make([]string, 0, len(requests))
	for _, req := range requests {
		requestNames = append(requestNames, req.Name)
	}

	action := bulkAction{
		verb:  actionCreate,
		names: requestNames,
		apply: func(ctx context.Context, i int) error {
			d, _, err := ds.Create(ctx, requests[i])
			if err != nil {
				return err
			}
			if d != nil {
				log.Printf("Droplet %s accepted (id %d)", requests[i].Name, d.ID)
			}
			return nil
		},
	}

	return runBulk(ctx, action, term, opts.Bulk)
}

// planCreateWithDeps builds the create requests with injected dependencies.
func planCreateWithDeps(ctx context.Context, opts CreateOptions, ds dropletsService) ([]*godo.DropletCreateRequest, error) {
	// Step 1: Validate options
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Generate names
	newNames, err := naming.NodeNames(opts.Prefix, opts.Count)
	if err != nil {
		return nil, err
	}

	// Step 3: Check for collisions with existing droplets
	log.Printf("Checking %d name(s) against existing droplets...", len(newNames))
	existing, err := listAllPages(ctx, ds.List)
	if err != nil {
		return nil, fmt.Errorf("failed to list droplets: %w", err)
	}
	if dups := naming.Collisions(newNames, names(existing)); len(dups) > 0 {
		return nil, &CollisionError{Names: dups}
	}

	// Step 4: Build requests
	batchTag := opts.BatchTag
	if batchTag == "" {
		batchTag = batchTagPrefix + uuid.NewString()
	}
	tags := append(append([]string(nil), opts.Tags...), batchTag)

	sshKeys := make([]godo.DropletCreateSSHKey, 0, len(opts.SSHKeys))
	for _, id := range opts.SSHKeys {
		sshKeys = append(sshKeys, godo.DropletCreateSSHKey{ID: id})
	}

	requests := make([]*godo.DropletCreateRequest, 0, len(newNames))
	for _, name := range newNames {
		requests = append(requests, &godo.DropletCreateRequest{
			Name:              name,
			Region:            opts.Region,
			Size:              opts.Size,
			Image:             godo.DropletCreateImage{Slug: opts.Image},
			SSHKeys:           sshKeys,
			PrivateNetworking: opts.PrivateNetworking,
			UserData:          opts.UserData,
			Tags:              tags,
		})
	}

	log.Printf("Planned %d droplet(s) tagged %s", len(requests), batchTag)
	return requests, nil
}
