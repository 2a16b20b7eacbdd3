package view

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"ragview/internal/api"
)

type fakeBackend struct {
	health    *api.Health
	healthErr error

	sources      []api.Source
	sourcesErr   error
	sourcesCalls int

	deleteRes   *api.DeleteResult
	deleteErr   error
	deleteCalls int

	indexRes *api.IndexResult
	indexErr error

	queryFn func(ctx context.Context, question string, n int) (*api.QueryResult, error)

	scrapeRes *api.ScrapeResult
	scrapeErr error
}

func (f *fakeBackend) Health(ctx context.Context) (*api.Health, error) {
	return f.health, f.healthErr
}

func (f *fakeBackend) IndexedSources(ctx context.Context) ([]api.Source, error) {
	f.sourcesCalls++
	return f.sources, f.sourcesErr
}

func (f *fakeBackend) ScrapeAndIndex(ctx context.Context, url string) (*api.IndexResult, error) {
	return f.indexRes, f.indexErr
}

func (f *fakeBackend) DeleteSource(ctx context.Context, url string) (*api.DeleteResult, error) {
	f.deleteCalls++
	return f.deleteRes, f.deleteErr
}

func (f *fakeBackend) Query(ctx context.Context, question string, n int) (*api.QueryResult, error) {
	if f.queryFn != nil {
		return f.queryFn(ctx, question, n)
	}
	return &api.QueryResult{Answer: "ok"}, nil
}

func (f *fakeBackend) Scrape(ctx context.Context, url string) (*api.ScrapeResult, error) {
	return f.scrapeRes, f.scrapeErr
}

func (f *fakeBackend) BaseURL() string { return "http://localhost:8000" }

func TestDeleteCanceledIssuesNoRequest(t *testing.T) {
	fake := &fakeBackend{sources: []api.Source{{URL: "https://a.example"}}}
	c := New(fake, 5)
	c.RefreshSources(context.Background())
	callsBefore := fake.sourcesCalls

	_, err := c.DeleteSource(context.Background(), "https://a.example", func() bool { return false })
	if !errors.Is(err, ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}
	if fake.deleteCalls != 0 {
		t.Error("declined confirmation must not issue a delete request")
	}
	if fake.sourcesCalls != callsBefore {
		t.Error("declined confirmation must not refresh the list")
	}
	if len(c.State().Sources) != 1 {
		t.Error("source list changed")
	}
}

func TestDeleteSuccessEmitsSystemMessageAndRefreshes(t *testing.T) {
	fake := &fakeBackend{deleteRes: &api.DeleteResult{DeletedChunks: 3}}
	c := New(fake, 5)

	msg, err := c.DeleteSource(context.Background(), "https://a.example", nil)
	if err != nil {
		t.Fatalf("DeleteSource: %v", err)
	}
	if msg.Kind != KindSystem {
		t.Errorf("kind = %s, want system", msg.Kind)
	}
	if fake.sourcesCalls != 1 {
		t.Error("expected a list refresh after deletion")
	}
}

func TestDeleteFailureEmitsErrorMessage(t *testing.T) {
	fake := &fakeBackend{deleteErr: &api.APIError{Message: "not found"}}
	c := New(fake, 5)

	msg, err := c.DeleteSource(context.Background(), "https://a.example", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if msg.Kind != KindError {
		t.Errorf("kind = %s, want error", msg.Kind)
	}
	if fake.sourcesCalls != 0 {
		t.Error("failed delete must not refresh the list")
	}
}

func TestIndexRejectsWhitespaceInput(t *testing.T) {
	fake := &fakeBackend{}
	c := New(fake, 5)

	_, err := c.IndexURL(context.Background(), "   \t")
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if len(c.Messages()) != 0 {
		t.Error("rejected input must not touch the feed")
	}
	if c.State().Indexing {
		t.Error("busy flag set for rejected input")
	}
}

func TestIndexSuccessMessageNamesTitleAndChunks(t *testing.T) {
	fake := &fakeBackend{indexRes: &api.IndexResult{Title: "Example Page", ChunksIndexed: 12}}
	c := New(fake, 5)

	msg, err := c.IndexURL(context.Background(), "https://a.example")
	if err != nil {
		t.Fatalf("IndexURL: %v", err)
	}
	want := fmt.Sprintf("Indexed %q: 12 chunks added", "Example Page")
	if msg.Content != want {
		t.Errorf("content = %q, want %q", msg.Content, want)
	}
	if fake.sourcesCalls != 1 {
		t.Error("expected a list refresh after indexing")
	}
	if c.State().Indexing {
		t.Error("busy flag not released")
	}
}

func TestIndexBusyFlagReleasedOnFailure(t *testing.T) {
	fake := &fakeBackend{indexErr: &api.StatusError{Code: 500, Detail: "boom"}}
	c := New(fake, 5)

	msg, err := c.IndexURL(context.Background(), "https://a.example")
	if err == nil {
		t.Fatal("expected error")
	}
	if msg.Kind != KindError {
		t.Errorf("kind = %s, want error", msg.Kind)
	}
	if c.State().Indexing {
		t.Error("busy flag not released after failure")
	}
}

func TestAskAppendsUserThenReplacesLoading(t *testing.T) {
	fake := &fakeBackend{}
	c := New(fake, 5)

	var loadingID string
	fake.queryFn = func(ctx context.Context, question string, n int) (*api.QueryResult, error) {
		msgs := c.Messages()
		if len(msgs) != 2 || msgs[0].Kind != KindUser || msgs[1].Kind != KindLoading {
			t.Fatalf("mid-flight feed = %+v", msgs)
		}
		loadingID = msgs[1].ID
		if n != 5 {
			t.Errorf("n_results = %d", n)
		}
		return &api.QueryResult{
			Answer:  "**bold** answer",
			Sources: []api.QuerySource{{URL: "https://a.example", Title: "A"}},
		}, nil
	}

	msg, err := c.Ask(context.Background(), "why?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if msg.Kind != KindAssistant || len(msg.Sources) != 1 {
		t.Errorf("terminal message = %+v", msg)
	}

	msgs := c.Messages()
	if len(msgs) != 2 {
		t.Fatalf("feed length = %d, want 2", len(msgs))
	}
	if msgs[1].ID != loadingID {
		t.Error("loading placeholder was not replaced in place")
	}
	if msgs[1].Kind != KindAssistant {
		t.Errorf("placeholder replaced by %s", msgs[1].Kind)
	}
}

func TestAskFailureReplacesLoadingWithError(t *testing.T) {
	fake := &fakeBackend{queryFn: func(ctx context.Context, q string, n int) (*api.QueryResult, error) {
		return nil, &api.APIError{Message: "no index"}
	}}
	c := New(fake, 5)

	msg, err := c.Ask(context.Background(), "why?")
	if err == nil {
		t.Fatal("expected error")
	}
	if msg.Kind != KindError {
		t.Errorf("kind = %s, want error", msg.Kind)
	}
	msgs := c.Messages()
	if len(msgs) != 2 || msgs[1].Kind != KindError {
		t.Errorf("feed = %+v", msgs)
	}
}

func TestAskIgnoresReentrantSubmission(t *testing.T) {
	fake := &fakeBackend{}
	c := New(fake, 5)

	fake.queryFn = func(ctx context.Context, q string, n int) (*api.QueryResult, error) {
		if _, err := c.Ask(ctx, "again"); !errors.Is(err, ErrBusy) {
			t.Errorf("re-entrant Ask: expected ErrBusy, got %v", err)
		}
		return &api.QueryResult{Answer: "done"}, nil
	}

	if _, err := c.Ask(context.Background(), "first"); err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if len(c.Messages()) != 2 {
		t.Errorf("re-entrant submission leaked into the feed: %+v", c.Messages())
	}
}

func TestScrapePhaseTransitions(t *testing.T) {
	fake := &fakeBackend{scrapeRes: &api.ScrapeResult{URL: "https://a.example"}}
	c := New(fake, 5)

	if c.State().ScrapePhase != PhaseIdle {
		t.Fatal("initial phase not idle")
	}

	res, err := c.Scrape(context.Background(), "https://a.example")
	if err != nil {
		t.Fatalf("Scrape: %v", err)
	}
	st := c.State()
	if st.ScrapePhase != PhaseDisplayed || st.Result != res {
		t.Errorf("state after success = %+v", st)
	}

	// A failed scrape discards the previous result.
	fake.scrapeRes = nil
	fake.scrapeErr = &api.StatusError{Code: 500, Detail: "boom"}
	if _, err := c.Scrape(context.Background(), "https://b.example"); err == nil {
		t.Fatal("expected error")
	}
	st = c.State()
	if st.ScrapePhase != PhaseErrored || st.Result != nil || st.ScrapeErr != "boom" {
		t.Errorf("state after failure = %+v", st)
	}
	if st.Scraping {
		t.Error("loading flag not cleared after failure")
	}
}

func TestStartupCannotConnect(t *testing.T) {
	fake := &fakeBackend{healthErr: fmt.Errorf("%w: dial tcp: refused", api.ErrUnreachable)}
	c := New(fake, 5)

	msgs := c.Startup(context.Background())
	if len(msgs) != 1 || msgs[0].Kind != KindError {
		t.Fatalf("messages = %+v", msgs)
	}
	if msgs[0].Content != "Cannot connect to backend at http://localhost:8000" {
		t.Errorf("content = %q", msgs[0].Content)
	}
	if fake.sourcesCalls != 1 {
		t.Error("source list must be refreshed regardless of outcome")
	}
}

func TestStartupUnhealthyBackend(t *testing.T) {
	fake := &fakeBackend{healthErr: &api.StatusError{Code: 503, Detail: "down"}}
	c := New(fake, 5)

	msgs := c.Startup(context.Background())
	if len(msgs) != 1 || msgs[0].Kind != KindError {
		t.Fatalf("messages = %+v", msgs)
	}
	if fake.sourcesCalls != 1 {
		t.Error("source list must be refreshed regardless of outcome")
	}
}

func TestStartupWarnsWhenKeyUnconfigured(t *testing.T) {
	fake := &fakeBackend{health: &api.Health{Status: "healthy", GroqAPIConfigured: false}}
	c := New(fake, 5)

	msgs := c.Startup(context.Background())
	if len(msgs) != 1 || msgs[0].Kind != KindWarning {
		t.Fatalf("messages = %+v", msgs)
	}
}

func TestStartupHealthyConfigured(t *testing.T) {
	fake := &fakeBackend{health: &api.Health{Status: "healthy", GroqAPIConfigured: true}}
	c := New(fake, 5)

	if msgs := c.Startup(context.Background()); len(msgs) != 0 {
		t.Fatalf("unexpected messages: %+v", msgs)
	}
	if fake.sourcesCalls != 1 {
		t.Error("source list not refreshed")
	}
}

func TestSetModeChatRefreshesSources(t *testing.T) {
	fake := &fakeBackend{sources: []api.Source{{URL: "https://a.example"}}}
	c := New(fake, 5)

	c.SetMode(context.Background(), ModeChat)
	if fake.sourcesCalls != 1 {
		t.Error("switching to chat mode must refresh sources")
	}
	// Re-selecting the active mode is a no-op.
	c.SetMode(context.Background(), ModeChat)
	if fake.sourcesCalls != 1 {
		t.Error("re-selecting the active mode refreshed again")
	}
}

func TestRefreshSourcesKeepsListOnError(t *testing.T) {
	fake := &fakeBackend{sources: []api.Source{{URL: "https://a.example"}}}
	c := New(fake, 5)
	c.RefreshSources(context.Background())

	fake.sourcesErr = &api.APIError{Message: "transient"}
	got := c.RefreshSources(context.Background())
	if len(got) != 1 {
		t.Error("failed refresh blanked the list")
	}
	if c.State().SourcesErr == "" {
		t.Error("refresh error not recorded")
	}
}
