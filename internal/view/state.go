// Package view owns the client-side UI state and implements the
// interaction semantics: mode and tab selection, the chat feed, source
// management, and the scrape flow. It talks to the backend through a
// narrow interface and never renders anything itself; render functions
// receive state, they do not reach into shared scope.
package view

import "ragview/internal/api"

// Mode selects which of the two interfaces is active.
type Mode string

const (
	ModeScrape Mode = "scrape"
	ModeChat   Mode = "chat"
)

// Tab selects the visible scrape result category.
type Tab string

const (
	TabOverview Tab = "overview"
	TabText     Tab = "text"
	TabImages   Tab = "images"
	TabLinks    Tab = "links"
	TabTables   Tab = "tables"
)

// Phase tracks the scrape flow: idle until a submission, loading while
// the request is in flight, then displayed or errored until the next
// submission resets it.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseDisplayed
	PhaseErrored
)

// State is a snapshot of everything the UI needs to draw itself.
type State struct {
	Mode Mode
	Tab  Tab

	Sources    []api.Source
	SourcesErr string

	Result      *api.ScrapeResult
	ScrapePhase Phase
	ScrapeErr   string

	Indexing bool
	Asking   bool
	Scraping bool
}
