package droplet

import (
	"context"
	"fmt"
	"log"

	"github.com/digitalocean/godo"
	"golang.org/x/oauth2"
)

// userAgent identifies dop to the API.
const userAgent = "dop"

// Client runs droplet operations against the DigitalOcean API.
type Client struct {
	droplets dropletsService
	keys     keysService
}

// clientOptions holds NewClient settings.
type clientOptions struct {
	baseURL   string
	userAgent string
}

// ClientOption configures NewClient.
type ClientOption func(*clientOptions)

// WithBaseURL points the client at another API endpoint.
func WithBaseURL(u string) ClientOption {
	return func(o *clientOptions) {
		o.baseURL = u
	}
}

// WithUserAgent overrides the user agent sent with each request.
func WithUserAgent(ua string) ClientOption {
	return func(o *clientOptions) {
		o.userAgent = ua
	}
}

// NewClient creates a Client authenticated with a static personal access
// token.
func NewClient(token string, opts ...ClientOption) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("API token is required")
	}

	o := clientOptions{userAgent: userAgent}
	for _, opt := range opts {
		opt(&o)
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), tokenSource)

	godoOpts := []godo.ClientOpt{godo.SetUserAgent(o.userAgent)}
	if o.baseURL != "" {
		godoOpts = append(godoOpts, godo.SetBaseURL(o.baseURL))
	}

	api, err := godo.New(httpClient, godoOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	log.Printf("API client ready (%s)", api.BaseURL)
	return newClientWithDeps(api.Droplets, api.Keys), nil
}

// newClientWithDeps creates a Client from injected services.
func newClientWithDeps(droplets dropletsService, keys keysService) *Client {
	return &Client{droplets: droplets, keys: keys}
}
