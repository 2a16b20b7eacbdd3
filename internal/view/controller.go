package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"ragview/internal/api"
)

// Backend is the slice of the API client the controller needs. It is an
// interface so tests can substitute a fake.
type Backend interface {
	Health(ctx context.Context) (*api.Health, error)
	IndexedSources(ctx context.Context) ([]api.Source, error)
	ScrapeAndIndex(ctx context.Context, url string) (*api.IndexResult, error)
	DeleteSource(ctx context.Context, url string) (*api.DeleteResult, error)
	Query(ctx context.Context, question string, nResults int) (*api.QueryResult, error)
	Scrape(ctx context.Context, url string) (*api.ScrapeResult, error)
	BaseURL() string
}

var (
	// ErrEmptyInput rejects empty or whitespace-only submissions before
	// any request is made.
	ErrEmptyInput = errors.New("input is empty")
	// ErrBusy reports a submission ignored because the same action is
	// already in flight.
	ErrBusy = errors.New("request already in flight")
	// ErrCanceled reports a deletion declined at the confirmation prompt.
	ErrCanceled = errors.New("canceled")
)

// Controller owns the UI state and chat feed and runs every backend
// interaction. The lock guards state only; it is never held across a
// network round trip.
type Controller struct {
	backend  Backend
	nResults int

	mu    sync.Mutex
	state State
	feed  []Message
}

// New creates a Controller in scrape mode with an empty feed.
func New(backend Backend, nResults int) *Controller {
	if nResults <= 0 {
		nResults = 5
	}
	return &Controller{
		backend:  backend,
		nResults: nResults,
		state:    State{Mode: ModeScrape, Tab: TabOverview},
	}
}

// State returns a snapshot of the current UI state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Messages returns a copy of the chat feed in order.
func (c *Controller) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.feed))
	copy(out, c.feed)
	return out
}

func (c *Controller) append(msg Message) Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.feed = append(c.feed, msg)
	return msg
}

// replace swaps the message with the given ID in place, keeping its
// position in the feed. Used to turn a loading placeholder into its
// terminal message.
func (c *Controller) replace(id string, msg Message) Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.feed {
		if c.feed[i].ID == id {
			msg.ID = id
			c.feed[i] = msg
			return msg
		}
	}
	c.feed = append(c.feed, msg)
	return msg
}

func (c *Controller) acquire(flag func(*State) *bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	f := flag(&c.state)
	if *f {
		return false
	}
	*f = true
	return true
}

func (c *Controller) release(flag func(*State) *bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	*flag(&c.state) = false
}

// SetMode activates one of the two modes. Switching into chat mode
// refreshes the indexed-source list.
func (c *Controller) SetMode(ctx context.Context, mode Mode) {
	c.mu.Lock()
	changed := c.state.Mode != mode
	c.state.Mode = mode
	c.mu.Unlock()

	if changed && mode == ModeChat {
		c.RefreshSources(ctx)
	}
}

// SetTab activates one result-category tab, deactivating the rest.
func (c *Controller) SetTab(tab Tab) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Tab = tab
}

// RefreshSources reloads the indexed-source list. Errors are recorded
// on the state; the previous list is kept so a failed refresh does not
// blank the UI.
func (c *Controller) RefreshSources(ctx context.Context) []api.Source {
	sources, err := c.backend.IndexedSources(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state.SourcesErr = err.Error()
		return c.state.Sources
	}
	c.state.Sources = sources
	c.state.SourcesErr = ""
	return sources
}

// DeleteSource removes one source from the index after confirmation.
// A declined confirm issues no request and leaves the list untouched.
// On success a system message is appended and the list refreshed; on
// failure an error message is appended. Overlapping deletes are not
// coordinated; the last completion wins.
func (c *Controller) DeleteSource(ctx context.Context, url string, confirm func() bool) (Message, error) {
	if confirm != nil && !confirm() {
		return Message{}, ErrCanceled
	}

	res, err := c.backend.DeleteSource(ctx, url)
	if err != nil {
		return c.append(newMessage(KindError, "Failed to delete source: "+err.Error())), err
	}

	msg := c.append(newMessage(KindSystem,
		fmt.Sprintf("Deleted %s (%d chunks removed)", url, res.DeletedChunks)))
	c.RefreshSources(ctx)
	return msg, nil
}

// IndexURL scrapes and indexes a page. Empty input is rejected before
// any request; the busy flag is held for the duration and always
// released. Success appends a system message naming the title and chunk
// count and refreshes the source list.
func (c *Controller) IndexURL(ctx context.Context, url string) (Message, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Message{}, ErrEmptyInput
	}
	if !c.acquire(func(s *State) *bool { return &s.Indexing }) {
		return Message{}, ErrBusy
	}
	defer c.release(func(s *State) *bool { return &s.Indexing })

	res, err := c.backend.ScrapeAndIndex(ctx, url)
	if err != nil {
		return c.append(newMessage(KindError, "Indexing failed: "+err.Error())), err
	}

	title := res.Title
	if title == "" {
		title = url
	}
	msg := c.append(newMessage(KindSystem,
		fmt.Sprintf("Indexed %q: %d chunks added", title, res.ChunksIndexed)))
	c.RefreshSources(ctx)
	return msg, nil
}

// Ask submits a chat question. The user message and a loading
// placeholder are appended immediately; the placeholder is replaced in
// place by the assistant answer or an error message.
func (c *Controller) Ask(ctx context.Context, question string) (Message, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Message{}, ErrEmptyInput
	}
	if !c.acquire(func(s *State) *bool { return &s.Asking }) {
		return Message{}, ErrBusy
	}
	defer c.release(func(s *State) *bool { return &s.Asking })

	c.append(newMessage(KindUser, question))
	loading := c.append(newMessage(KindLoading, "Thinking..."))

	res, err := c.backend.Query(ctx, question, c.nResults)
	if err != nil {
		return c.replace(loading.ID, newMessage(KindError, "Query failed: "+err.Error())), err
	}

	answer := newMessage(KindAssistant, res.Answer)
	answer.Sources = res.Sources
	return c.replace(loading.ID, answer), nil
}

// Scrape runs the one-shot scrape flow: idle to loading to displayed or
// errored. The loading phase is always cleared on completion; a new
// result replaces the previous one entirely, and on error the previous
// result is discarded.
func (c *Controller) Scrape(ctx context.Context, url string) (*api.ScrapeResult, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrEmptyInput
	}
	if !c.acquire(func(s *State) *bool { return &s.Scraping }) {
		return nil, ErrBusy
	}
	defer c.release(func(s *State) *bool { return &s.Scraping })

	c.mu.Lock()
	c.state.ScrapePhase = PhaseLoading
	c.state.ScrapeErr = ""
	c.mu.Unlock()

	res, err := c.backend.Scrape(ctx, url)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state.Result = nil
		c.state.ScrapePhase = PhaseErrored
		c.state.ScrapeErr = err.Error()
		return nil, err
	}
	c.state.Result = res
	c.state.ScrapePhase = PhaseDisplayed
	return res, nil
}

// Startup runs the initial health check and reports the outcome as chat
// messages: a distinct message when the backend cannot be reached, an
// instruction to start it on a non-2xx answer, and a warning when the
// generation API key is unconfigured. The source list is refreshed in
// every case.
func (c *Controller) Startup(ctx context.Context) []Message {
	var out []Message

	health, err := c.backend.Health(ctx)
	switch {
	case err != nil && api.IsUnreachable(err):
		out = append(out, c.append(newMessage(KindError,
			fmt.Sprintf("Cannot connect to backend at %s", c.backend.BaseURL()))))
	case err != nil:
		out = append(out, c.append(newMessage(KindError,
			"Backend is not healthy. Start the backend and reload.")))
	case !health.GroqAPIConfigured:
		out = append(out, c.append(newMessage(KindWarning,
			"Generation API key is not configured; chat answers are unavailable.")))
	}

	c.RefreshSources(ctx)
	return out
}
