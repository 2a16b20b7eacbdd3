package mcp

import "github.com/mark3labs/mcp-go/mcp"

// scrapePageTool defines the scrape_page MCP tool.
var scrapePageTool = mcp.NewTool("scrape_page",
	mcp.WithDescription("Scrape a web page and return its metadata, headings, paragraphs, links, and tables as text."),
	mcp.WithString("url",
		mcp.Required(),
		mcp.Description("URL of the page to scrape"),
	),
)

// askQuestionTool defines the ask_question MCP tool.
var askQuestionTool = mcp.NewTool("ask_question",
	mcp.WithDescription("Ask a question over the indexed pages. Returns an answer with the source passages it was grounded on."),
	mcp.WithString("question",
		mcp.Required(),
		mcp.Description("Natural language question"),
	),
	mcp.WithNumber("n_results",
		mcp.Description("Number of passages to retrieve (default 5)"),
	),
)

// indexURLTool defines the index_url MCP tool.
var indexURLTool = mcp.NewTool("index_url",
	mcp.WithDescription("Scrape a web page and add its content to the question-answering index."),
	mcp.WithString("url",
		mcp.Required(),
		mcp.Description("URL of the page to index"),
	),
)

// listSourcesTool defines the list_sources MCP tool.
var listSourcesTool = mcp.NewTool("list_sources",
	mcp.WithDescription("List the URLs currently in the question-answering index."),
)
