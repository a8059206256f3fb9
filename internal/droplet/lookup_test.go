package droplet

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/digitalocean/godo"
)

func TestFindByName(t *testing.T) {
	ds := newMockDropletsService(
		testDroplet(1, "node01"),
		testDroplet(2, "node02"),
		testDroplet(3, "dup"),
		testDroplet(4, "dup"),
	)

	t.Run("single match", func(t *testing.T) {
		d, err := findByNameWithDeps(context.Background(), "node02", ds)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ID != 2 {
			t.Errorf("found droplet %d, want 2", d.ID)
		}
	})

	t.Run("no match", func(t *testing.T) {
		_, err := findByNameWithDeps(context.Background(), "node0", ds)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if err.Error() != "droplet not found: node0" {
			t.Errorf("unexpected message: %v", err)
		}
		var notFound *NotFoundError
		if !errors.As(err, &notFound) || notFound.Name != "node0" {
			t.Errorf("expected NotFoundError for node0, got %#v", err)
		}
	})

	t.Run("ambiguous", func(t *testing.T) {
		_, err := findByNameWithDeps(context.Background(), "dup", ds)
		var ambiguous *AmbiguousError
		if !errors.As(err, &ambiguous) {
			t.Fatalf("expected AmbiguousError, got %v", err)
		}
		if ambiguous.Name != "dup" || !slices.Equal(ambiguous.IDs, []int{3, 4}) {
			t.Errorf("unexpected error fields: %+v", ambiguous)
		}
	})
}

func TestSSHAddress(t *testing.T) {
	tests := []struct {
		name    string
		droplet godo.Droplet
		want    string
		wantErr bool
	}{
		{
			name:    "public address",
			droplet: testDroplet(7, "node01"),
			want:    "203.0.113.7",
		},
		{
			name:    "no networks",
			droplet: godo.Droplet{ID: 8, Name: "node02"},
			wantErr: true,
		},
		{
			name: "private only",
			droplet: godo.Droplet{
				ID:   9,
				Name: "node03",
				Networks: &godo.Networks{
					V4: []godo.NetworkV4{{IPAddress: "10.133.0.9", Type: "private"}},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SSHAddress(&tt.droplet)
			if tt.wantErr {
				if err == nil {
					t.Errorf("SSHAddress() expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SSHAddress() = %q, want %q", got, tt.want)
			}
		})
	}
}
