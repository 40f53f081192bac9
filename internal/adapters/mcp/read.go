package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"contentmgr/internal/application"
	"contentmgr/internal/application/commands"
	"contentmgr/internal/domain"
)

// RegisterReadTools adds all read-only document tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, g *Guard) {
	s.AddTool(documentsTool(), documentsHandler(g))
	s.AddTool(listTool(), listHandler(g))
	s.AddTool(treeTool(), treeHandler(g))
	s.AddTool(showTool(), showHandler(g))
	s.AddTool(searchTool(), searchHandler(g))
	s.AddTool(enumsTool(), enumsHandler(g))
	s.AddTool(queryTool(), queryHandler(g))
}

func documentParam() mcp.ToolOption {
	return mcp.WithString("document",
		mcp.Description("Document name: "+strings.Join(domain.DefaultCatalog().Names(), ", ")),
		mcp.Required(),
	)
}

func pathParam(desc string) mcp.ToolOption {
	return mcp.WithString("path",
		mcp.Description(desc+" Slash separated, e.g. melee/one_hand/iron_sword."),
		mcp.Required(),
	)
}

// --- documents ---

func documentsTool() mcp.Tool {
	return mcp.NewTool("documents",
		mcp.WithDescription("List the managed documents with their layout, entry count and unsaved state."),
	)
}

func documentsHandler(g *Guard) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var docs []commands.DocumentSummary
		err := g.With(func(s *application.Session) error {
			var err error
			docs, err = commands.NewListDocumentsCommand(s).Execute(ctx)
			return err
		})
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, d := range docs {
			marker := ""
			if d.Modified {
				marker = "  (modified)"
			}
			fmt.Fprintf(&sb, "%s  %s  %d entries  %s%s\n", d.Name, d.Layout, d.Entries, d.RelPath, marker)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List the entries of a document with their paths. Nested documents list every record."),
		documentParam(),
		mcp.WithString("filter",
			mcp.Description("Case-insensitive substring filter on entry labels"),
		),
	)
}

func listHandler(g *Guard) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		document := req.GetString("document", "")
		filter := req.GetString("filter", "")

		var entries []domain.IndexEntry
		err := g.With(func(s *application.Session) error {
			spec, err := s.Spec(document)
			if err != nil {
				return err
			}
			doc, err := s.Document(document)
			if err != nil {
				return err
			}
			entries = domain.FilterIndex(domain.BuildIndex(spec.Layout, doc), filter)
			return nil
		})
		if err != nil {
			return toolError(err)
		}

		if len(entries) == 0 {
			return mcp.NewToolResultText("No entries."), nil
		}
		var sb strings.Builder
		for _, e := range entries {
			fmt.Fprintf(&sb, "%s  %s\n", e.Label, e.Path)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display a nested document (Armors, Weapons) as a tree. Records are marked with *."),
		documentParam(),
		mcp.WithString("filter",
			mcp.Description("Only show branches leading to keys containing this text"),
		),
	)
}

func treeHandler(g *Guard) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		document := req.GetString("document", "")
		filter := req.GetString("filter", "")

		var root *domain.TreeItem
		err := g.With(func(s *application.Session) error {
			var err error
			root, err = commands.NewBuildTreeCommand(s, document).Execute(ctx)
			return err
		})
		if err != nil {
			return toolError(err)
		}

		if filter == "" {
			expandAll(root)
		} else if len(domain.MatchTree(root, filter)) == 0 {
			return mcp.NewToolResultText("No matches."), nil
		}

		var sb strings.Builder
		RenderTree(&sb, root)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func expandAll(item *domain.TreeItem) {
	item.Expand()
	for _, c := range item.Children {
		expandAll(c)
	}
}

// RenderTree writes the visible rows of a tree, indented by depth
func RenderTree(sb *strings.Builder, root *domain.TreeItem) {
	for _, row := range root.Flatten() {
		marker := ""
		if row.Leaf {
			marker = " *"
		}
		fmt.Fprintf(sb, "%s%s%s\n", strings.Repeat("  ", row.Depth()), row.Key, marker)
	}
}

// --- show ---

func showTool() mcp.Tool {
	return mcp.NewTool("show",
		mcp.WithDescription("Show the fields of an entry with their edit roles, or the children of a branch."),
		documentParam(),
		pathParam("Entry path."),
	)
}

func showHandler(g *Guard) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		document := req.GetString("document", "")
		path := domain.ParsePath(req.GetString("path", ""))

		var text string
		err := g.With(func(s *application.Session) error {
			res, err := commands.NewShowFieldsCommand(s, document, path).Execute(ctx)
			if err != nil {
				return err
			}
			text = FormatFields(res)
			return nil
		})
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(text), nil
	}
}

// FormatFields renders a show result as "key (role): value" lines
func FormatFields(res *commands.ShowFieldsResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s (%s)\n", res.Document, res.Path, res.Class)
	if !res.Value.IsMap() {
		fmt.Fprintf(&sb, "%s\n", res.Value.Text())
		return sb.String()
	}
	for _, f := range res.Fields {
		if f.Role == domain.RoleNested {
			fmt.Fprintf(&sb, "%s (%s): {%d keys}\n", f.Key, f.Role, f.Value.Len())
			continue
		}
		fmt.Fprintf(&sb, "%s (%s): %s\n", f.Key, f.Role, f.Text)
	}
	return sb.String()
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Fuzzy search entry keys and names across documents."),
		mcp.WithString("query",
			mcp.Description("Search query (at least 2 characters)"),
			mcp.Required(),
		),
		mcp.WithString("document",
			mcp.Description("Restrict the search to one document"),
		),
	)
}

func searchHandler(g *Guard) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}
		document := req.GetString("document", "")

		var hits []commands.SearchHit
		err := g.With(func(s *application.Session) error {
			var err error
			hits, err = commands.NewSearchCommand(s, document, query).Execute(ctx)
			return err
		})
		if err != nil {
			return toolError(err)
		}

		if len(hits) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}
		var sb strings.Builder
		for _, h := range hits {
			fmt.Fprintf(&sb, "%s  %s  %s\n", h.Document, h.Path, h.Name)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- enums ---

func enumsTool() mcp.Tool {
	return mcp.NewTool("enums",
		mcp.WithDescription("List the known rarity tiers and elemental tags."),
	)
}

func enumsHandler(g *Guard) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var enums domain.Enums
		_ = g.With(func(s *application.Session) error {
			enums = s.Enums()
			return nil
		})
		text := fmt.Sprintf("rarities: %s\nelements: %s\n",
			strings.Join(enums.Rarities, ", "),
			strings.Join(enums.Elements, ", "))
		return mcp.NewToolResultText(text), nil
	}
}

// --- query ---

func queryTool() mcp.Tool {
	return mcp.NewTool("query",
		mcp.WithDescription("Evaluate a JSONPath expression. With a document the root is that document; without one the root maps document names to documents."),
		mcp.WithString("expression",
			mcp.Description("JSONPath expression, e.g. $.skills.*.power"),
			mcp.Required(),
		),
		mcp.WithString("document",
			mcp.Description("Document to query"),
		),
	)
}

func queryHandler(g *Guard) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		expression := req.GetString("expression", "")
		document := req.GetString("document", "")

		var res *commands.QueryResult
		err := g.With(func(s *application.Session) error {
			var err error
			res, err = commands.NewQueryCommand(s, document, expression).Execute(ctx)
			return err
		})
		if err != nil {
			return toolError(err)
		}

		data, err := json.MarshalIndent(res.Values, "", "  ")
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
