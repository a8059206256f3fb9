package droplet

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/digitalocean/godo"
)

// pagedLinks returns links for page of last, as the API reports them.
func pagedLinks(page, last int) *godo.Links {
	pages := &godo.Pages{}
	if page > 1 {
		pages.First = "https://api.digitalocean.com/v2/droplets?page=1&per_page=200"
		pages.Prev = fmt.Sprintf("https://api.digitalocean.com/v2/droplets?page=%d&per_page=200", page-1)
	}
	if page < last {
		pages.Next = fmt.Sprintf("https://api.digitalocean.com/v2/droplets?page=%d&per_page=200", page+1)
		pages.Last = fmt.Sprintf("https://api.digitalocean.com/v2/droplets?page=%d&per_page=200", last)
	}
	return &godo.Links{Pages: pages}
}

func TestListAll_FollowsPages(t *testing.T) {
	pages := [][]godo.Droplet{
		{testDroplet(1, "node01"), testDroplet(2, "node02")},
		{testDroplet(3, "node03")},
		{testDroplet(4, "web01")},
	}

	ds := newMockDropletsService()
	ds.listFunc = func(ctx context.Context, opt *godo.ListOptions) ([]godo.Droplet, *godo.Response, error) {
		page := opt.Page
		if page == 0 {
			page = 1
		}
		return pages[page-1], &godo.Response{Links: pagedLinks(page, len(pages))}, nil
	}
	client := newClientWithDeps(ds, &mockKeysService{})

	droplets, err := client.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"node01", "node02", "node03", "web01"}
	if got := names(droplets); !slices.Equal(got, want) {
		t.Errorf("ListAll() = %v, want %v", got, want)
	}

	if len(ds.listCalls) != 3 {
		t.Fatalf("expected 3 list calls, got %d", len(ds.listCalls))
	}
	for i, call := range ds.listCalls {
		if call.PerPage != pageSize {
			t.Errorf("call %d PerPage = %d, want %d", i, call.PerPage, pageSize)
		}
	}
	if ds.listCalls[1].Page != 2 || ds.listCalls[2].Page != 3 {
		t.Errorf("unexpected pages requested: %+v", ds.listCalls)
	}
}

func TestListAll_Empty(t *testing.T) {
	client := newClientWithDeps(newMockDropletsService(), &mockKeysService{})

	droplets, err := client.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(droplets) != 0 {
		t.Errorf("expected no droplets, got %d", len(droplets))
	}
}

func TestListAll_Error(t *testing.T) {
	ds := newMockDropletsService()
	ds.listFunc = func(ctx context.Context, opt *godo.ListOptions) ([]godo.Droplet, *godo.Response, error) {
		return nil, nil, errors.New("connection refused")
	}
	client := newClientWithDeps(ds, &mockKeysService{})

	_, err := client.ListAll(context.Background())
	if err == nil || !strings.Contains(err.Error(), "failed to list droplets: connection refused") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListKeys(t *testing.T) {
	keys := &mockKeysService{
		listFunc: func(ctx context.Context, opt *godo.ListOptions) ([]godo.Key, *godo.Response, error) {
			return []godo.Key{
				{ID: 101, Name: "laptop"},
				{ID: 202, Name: "ci"},
			}, &godo.Response{}, nil
		},
	}
	client := newClientWithDeps(newMockDropletsService(), keys)

	got, err := client.ListKeys(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "laptop" || got[1].ID != 202 {
		t.Errorf("ListKeys() = %+v", got)
	}
	if keys.listCalls != 1 {
		t.Errorf("expected 1 list call, got %d", keys.listCalls)
	}
}

func TestListKeys_Error(t *testing.T) {
	keys := &mockKeysService{
		listFunc: func(ctx context.Context, opt *godo.ListOptions) ([]godo.Key, *godo.Response, error) {
			return nil, nil, errors.New("401 Unable to authenticate you")
		},
	}
	client := newClientWithDeps(newMockDropletsService(), keys)

	_, err := client.ListKeys(context.Background())
	if err == nil || !strings.Contains(err.Error(), "failed to list SSH keys") {
		t.Fatalf("unexpected error: %v", err)
	}
}
