package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `daylog stores hours logged per calendar date against an ordered list of categories.

Concepts:
- Categories: the ordered label list offered when logging a day. Duplicates are allowed. Renaming a category never rewrites past logs.
- Day log: all (label, hours) pairs for one YYYY-MM-DD date. Submitting a date replaces everything stored for it.

Workflow:
1) Call get_categories to learn the labels in use.
2) Call submit_day with the full set of entries for a date. Entries with zero hours are dropped.
3) Use list_logs or get_summary with optional from/to dates to review history.

Docs:
- daylog://docs/usage
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "daylog://docs/usage",
		Name:        "docs_usage",
		Title:       "Using the daylog tools",
		Description: "Data model and examples for the daylog tools.",
		Content: `# Using the daylog tools

## Data model

- ` + "`categories`" + `: ordered list of strings.
- Day log: ` + "`{date, entries: [{label, hours}]}`" + `. At most one per date.

## Submitting a day

` + "```json" + `
{"date": "2024-03-05", "entries": [{"label": "Exercise", "hours": 1.5}, {"label": "Reading", "hours": 2}]}
` + "```" + `

A second submission for the same date replaces the first one.

## Summaries

` + "`get_summary`" + ` returns one total per day, one series per label (0 on days without it)
and a grand total. Sums are exact to the decimal digit.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
