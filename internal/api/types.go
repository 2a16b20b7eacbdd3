package api

// Health is the backend health report.
type Health struct {
	Status            string `json:"status"`
	RAGEnabled        bool   `json:"rag_enabled"`
	GroqAPIConfigured bool   `json:"groq_api_configured"`
	MongoDBConnected  bool   `json:"mongodb_connected"`
	SentimentReady    bool   `json:"sentiment_analysis_ready"`
}

// Source is an indexed document: a URL with its title and chunk count.
type Source struct {
	URL    string `json:"url"`
	Title  string `json:"title"`
	Chunks int    `json:"chunks"`
}

// IndexResult reports what a scrape-and-index call stored.
type IndexResult struct {
	URL           string `json:"url"`
	Title         string `json:"title"`
	ChunksIndexed int    `json:"chunks_indexed"`
	MongoID       string `json:"mongodb_id"`
}

// QuerySource is a citation attached to a generated answer.
type QuerySource struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// QueryResult is a generated answer with its citations.
type QueryResult struct {
	Answer     string        `json:"answer"`
	Sources    []QuerySource `json:"sources"`
	ChunksUsed int           `json:"chunks_used"`
}

// DeleteResult reports how many chunks a source deletion removed.
type DeleteResult struct {
	DeletedChunks int `json:"deleted_chunks"`
}

// Metadata holds page-level metadata extracted by the scraper.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Author      string `json:"author"`
}

// TextContent holds the textual content of a scraped page. Headings is
// keyed by level tag ("h1".."h6"); absent levels may be missing entirely.
type TextContent struct {
	Headings   map[string][]string `json:"headings"`
	Paragraphs []string            `json:"paragraphs"`
	AllText    string              `json:"all_text"`
}

// Image is a scraped image reference.
type Image struct {
	URL   string `json:"url"`
	Alt   string `json:"alt"`
	Title string `json:"title"`
}

// Link is a scraped hyperlink.
type Link struct {
	URL   string `json:"url"`
	Text  string `json:"text"`
	Title string `json:"title"`
}

// Links groups scraped links by whether they stay on the scraped host.
type Links struct {
	Internal []Link `json:"internal"`
	External []Link `json:"external"`
}

// Table is a scraped table. Headers may be empty when the table has no
// header row.
type Table struct {
	Index   int        `json:"index"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// ScrapeStats are the per-page extraction counters.
type ScrapeStats struct {
	TotalImages     int `json:"total_images"`
	TotalLinks      int `json:"total_links"`
	TotalTables     int `json:"total_tables"`
	TotalHeadings   int `json:"total_headings"`
	TotalParagraphs int `json:"total_paragraphs"`
}

// ScrapeResult is everything the backend extracted from one page.
type ScrapeResult struct {
	URL      string      `json:"url"`
	Metadata Metadata    `json:"metadata"`
	Text     TextContent `json:"text"`
	Images   []Image     `json:"images"`
	Links    Links       `json:"links"`
	Tables   []Table     `json:"tables"`
	Stats    ScrapeStats `json:"stats"`
	MongoID  string      `json:"mongodb_id"`
}

// StoredScrape is a scrape persisted server-side, as returned by the
// scrape-history endpoints.
type StoredScrape struct {
	ID           string        `json:"_id"`
	URL          string        `json:"url"`
	Title        string        `json:"title"`
	ScrapedAt    string        `json:"scraped_at"`
	IndexedInRAG bool          `json:"indexed_in_rag"`
	Data         *ScrapeResult `json:"data,omitempty"`
}

// StoreStats summarizes the server-side scrape store.
type StoreStats struct {
	Total      int `json:"total_scrapes"`
	Indexed    int `json:"indexed_in_rag"`
	NotIndexed int `json:"not_indexed"`
}

// Sentiment is a single sentiment classification.
type Sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// SentimentSummary aggregates sentiment over a document's paragraphs.
type SentimentSummary struct {
	OverallSentiment string  `json:"overall_sentiment"`
	Positive         int     `json:"positive"`
	Negative         int     `json:"negative"`
	Neutral          int     `json:"neutral"`
	Total            int     `json:"total"`
	PositivePct      float64 `json:"positive_pct"`
	NegativePct      float64 `json:"negative_pct"`
	NeutralPct       float64 `json:"neutral_pct"`
	AverageScore     float64 `json:"average_score"`
}

// ScrapeSentiment is the sentiment analysis of one stored scrape.
type ScrapeSentiment struct {
	URL     string            `json:"url"`
	Title   string            `json:"title"`
	Summary *SentimentSummary `json:"summary,omitempty"`
}

// SentimentStats aggregates sentiment across the scrape store.
type SentimentStats struct {
	TotalAnalyzed int     `json:"total_analyzed"`
	Positive      int     `json:"positive"`
	Negative      int     `json:"negative"`
	Neutral       int     `json:"neutral"`
	PositivePct   float64 `json:"positive_pct"`
	NegativePct   float64 `json:"negative_pct"`
	NeutralPct    float64 `json:"neutral_pct"`
}
