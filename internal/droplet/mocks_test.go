package droplet

import (
	"context"
	"fmt"
	"sync"

	"github.com/digitalocean/godo"

	"github.com/jbweber/dop/internal/prompt"
)

// mockDropletsService is a mock implementation of the dropletsService interface for testing.
type mockDropletsService struct {
	mu sync.Mutex

	// Configurable behavior
	listFunc   func(ctx context.Context, opt *godo.ListOptions) ([]godo.Droplet, *godo.Response, error)
	createFunc func(ctx context.Context, req *godo.DropletCreateRequest) (*godo.Droplet, *godo.Response, error)
	deleteFunc func(ctx context.Context, dropletID int) (*godo.Response, error)

	// Call tracking
	listCalls   []godo.ListOptions
	createCalls []*godo.DropletCreateRequest
	deleteCalls []int
}

// newMockDropletsService creates a mock whose single page holds existing.
func newMockDropletsService(existing ...godo.Droplet) *mockDropletsService {
	m := &mockDropletsService{}

	// Default: one page containing the existing droplets
	m.listFunc = func(ctx context.Context, opt *godo.ListOptions) ([]godo.Droplet, *godo.Response, error) {
		return existing, &godo.Response{Links: &godo.Links{}}, nil
	}

	// Default: create succeeds and echoes the name
	m.createFunc = func(ctx context.Context, req *godo.DropletCreateRequest) (*godo.Droplet, *godo.Response, error) {
		return &godo.Droplet{ID: 1000 + len(m.createCalls), Name: req.Name, Status: "new"}, nil, nil
	}

	// Default: delete succeeds
	m.deleteFunc = func(ctx context.Context, dropletID int) (*godo.Response, error) {
		return nil, nil
	}

	return m
}

func (m *mockDropletsService) List(ctx context.Context, opt *godo.ListOptions) ([]godo.Droplet, *godo.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls = append(m.listCalls, *opt)
	return m.listFunc(ctx, opt)
}

func (m *mockDropletsService) Create(ctx context.Context, req *godo.DropletCreateRequest) (*godo.Droplet, *godo.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls = append(m.createCalls, req)
	return m.createFunc(ctx, req)
}

func (m *mockDropletsService) Delete(ctx context.Context, dropletID int) (*godo.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls = append(m.deleteCalls, dropletID)
	return m.deleteFunc(ctx, dropletID)
}

// mockKeysService is a mock implementation of the keysService interface for testing.
type mockKeysService struct {
	listFunc  func(ctx context.Context, opt *godo.ListOptions) ([]godo.Key, *godo.Response, error)
	listCalls int
}

func (m *mockKeysService) List(ctx context.Context, opt *godo.ListOptions) ([]godo.Key, *godo.Response, error) {
	m.listCalls++
	return m.listFunc(ctx, opt)
}

// mockTerminal is a mock implementation of the Terminal interface for testing.
type mockTerminal struct {
	// Configurable behavior
	answer     bool
	confirmErr error

	// Call tracking
	confirmMessages []string
	notices         []string
	progressLabel   string
	progressTotal   int
	advanced        []string
	progressDone    bool
}

// newMockTerminal creates a mock terminal that answers the confirmation with answer.
func newMockTerminal(answer bool) *mockTerminal {
	return &mockTerminal{answer: answer}
}

func (m *mockTerminal) Confirm(message string) (bool, error) {
	m.confirmMessages = append(m.confirmMessages, message)
	return m.answer, m.confirmErr
}

func (m *mockTerminal) Notice(message string) {
	m.notices = append(m.notices, message)
}

func (m *mockTerminal) StartProgress(label string, total int) prompt.Reporter {
	m.progressLabel = label
	m.progressTotal = total
	return &mockReporter{term: m}
}

// mockReporter records progress on its terminal.
type mockReporter struct {
	term *mockTerminal
}

func (r *mockReporter) Advance(item string) {
	r.term.advanced = append(r.term.advanced, item)
}

func (r *mockReporter) Done() {
	r.term.progressDone = true
}

// testDroplet creates a droplet with a public address for testing.
func testDroplet(id int, name string) godo.Droplet {
	return godo.Droplet{
		ID:     id,
		Name:   name,
		Status: "active",
		Networks: &godo.Networks{
			V4: []godo.NetworkV4{
				{IPAddress: fmt.Sprintf("203.0.113.%d", id%250), Type: "public"},
				{IPAddress: fmt.Sprintf("10.133.0.%d", id%250), Type: "private"},
			},
		},
	}
}
