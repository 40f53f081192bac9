package mcp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"contentmgr/internal/application"
	"contentmgr/internal/application/commands"
	"contentmgr/internal/domain"
)

// RegisterWriteTools adds all document editing tools to the MCP server.
// Edits stay in memory until save or save_all is called.
func RegisterWriteTools(s *server.MCPServer, g *Guard) {
	s.AddTool(setFieldsTool(), setFieldsHandler(g))
	s.AddTool(createTool(), createHandler(g))
	s.AddTool(duplicateTool(), duplicateHandler(g))
	s.AddTool(deleteTool(), deleteHandler(g))
	s.AddTool(revertTool(), revertHandler(g))
	s.AddTool(saveTool(), saveHandler(g))
	s.AddTool(saveAllTool(), saveAllHandler(g))
	s.AddTool(reloadTool(), reloadHandler(g))
}

// run executes a command under the session lock and reports its message
func run(g *Guard, exec func(*application.Session) (string, error)) (*mcp.CallToolResult, error) {
	var msg string
	err := g.With(func(s *application.Session) error {
		var err error
		msg, err = exec(s)
		return err
	})
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(msg), nil
}

// --- set_fields ---

func setFieldsTool() mcp.Tool {
	return mcp.NewTool("set_fields",
		mcp.WithDescription("Edit fields of an entry. Each value is coerced to the type the field currently has; unknown keys and nested objects are skipped."),
		documentParam(),
		pathParam("Entry path."),
		mcp.WithObject("fields",
			mcp.Description(`Field values keyed by field name, e.g. {"value": 15, "elements": "Fire, Ice"}`),
			mcp.Required(),
		),
	)
}

func setFieldsHandler(g *Guard) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		document := req.GetString("document", "")
		path := domain.ParsePath(req.GetString("path", ""))

		raw, ok := req.GetArguments()["fields"].(map[string]any)
		if !ok {
			return toolError(fmt.Errorf("fields must be an object"))
		}
		edits := make(map[string]string, len(raw))
		for k, v := range raw {
			edits[k] = rawText(v)
		}

		return run(g, func(s *application.Session) (string, error) {
			res, err := commands.NewApplyFieldsCommand(s, document, path, edits).Execute(ctx)
			if err != nil {
				return "", err
			}
			return res.Message, nil
		})
	}
}

// rawText renders a JSON argument the way a user would type it
func rawText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			parts[i] = rawText(item)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(t)
	}
}

// --- create ---

func createTool() mcp.Tool {
	return mcp.NewTool("create",
		mcp.WithDescription("Create a templated entry. Classes/Races need group (playable or non_playable); Armors/Weapons need category and slot."),
		documentParam(),
		mcp.WithString("name",
			mcp.Description("Display name; the key is derived from it (lowercase, spaces to underscores)"),
			mcp.Required(),
		),
		mcp.WithString("group", mcp.Description("Group for Classes and Races")),
		mcp.WithString("category", mcp.Description("Category for Armors and Weapons")),
		mcp.WithString("slot", mcp.Description("Slot for Armors and Weapons")),
	)
}

func createHandler(g *Guard) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		document := req.GetString("document", "")
		name := req.GetString("name", "")
		placement := domain.Placement{
			Group:    req.GetString("group", ""),
			Category: req.GetString("category", ""),
			Slot:     req.GetString("slot", ""),
		}

		return run(g, func(s *application.Session) (string, error) {
			res, err := commands.NewCreateEntryCommand(s, document, name, placement).Execute(ctx)
			if err != nil {
				return "", err
			}
			return res.Message, nil
		})
	}
}

// --- duplicate ---

func duplicateTool() mcp.Tool {
	return mcp.NewTool("duplicate",
		mcp.WithDescription("Copy an entry next to itself under a new name."),
		documentParam(),
		pathParam("Path of the entry to copy."),
		mcp.WithString("new_name",
			mcp.Description("Display name of the copy"),
			mcp.Required(),
		),
	)
}

func duplicateHandler(g *Guard) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		document := req.GetString("document", "")
		path := domain.ParsePath(req.GetString("path", ""))
		newName := req.GetString("new_name", "")

		return run(g, func(s *application.Session) (string, error) {
			res, err := commands.NewDuplicateEntryCommand(s, document, path, newName).Execute(ctx)
			if err != nil {
				return "", err
			}
			return res.Message, nil
		})
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete an entry. Requires confirm=true."),
		documentParam(),
		pathParam("Path of the entry to delete."),
		mcp.WithBoolean("confirm",
			mcp.Description("Must be true to delete"),
			mcp.Required(),
		),
	)
}

func deleteHandler(g *Guard) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		document := req.GetString("document", "")
		path := domain.ParsePath(req.GetString("path", ""))
		confirm := req.GetBool("confirm", false)

		return run(g, func(s *application.Session) (string, error) {
			res, err := commands.NewDeleteEntryCommand(s, document, path, confirm).Execute(ctx)
			if err != nil {
				return "", err
			}
			return res.Message, nil
		})
	}
}

// --- revert ---

func revertTool() mcp.Tool {
	return mcp.NewTool("revert",
		mcp.WithDescription("Restore an entry to its last loaded or saved state."),
		documentParam(),
		pathParam("Entry path."),
	)
}

func revertHandler(g *Guard) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		document := req.GetString("document", "")
		path := domain.ParsePath(req.GetString("path", ""))

		return run(g, func(s *application.Session) (string, error) {
			res, err := commands.NewRevertEntryCommand(s, document, path).Execute(ctx)
			if err != nil {
				return "", err
			}
			return res.Message, nil
		})
	}
}

// --- save ---

func saveTool() mcp.Tool {
	return mcp.NewTool("save",
		mcp.WithDescription("Write one document to disk, backing up the previous file."),
		documentParam(),
	)
}

func saveHandler(g *Guard) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		document := req.GetString("document", "")

		return run(g, func(s *application.Session) (string, error) {
			res, err := commands.NewSaveDocumentCommand(s, document).Execute(ctx)
			if err != nil {
				return "", err
			}
			return res.Message, nil
		})
	}
}

// --- save_all ---

func saveAllTool() mcp.Tool {
	return mcp.NewTool("save_all",
		mcp.WithDescription("Write every document to disk. Failures are reported per document."),
	)
}

func saveAllHandler(g *Guard) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var res *commands.SaveResult
		err := g.With(func(s *application.Session) error {
			var err error
			res, err = commands.NewSaveAllCommand(s).Execute(ctx)
			return err
		})

		var failures *domain.SaveFailures
		if errors.As(err, &failures) {
			lines := []string{res.Message}
			for _, name := range failures.Names() {
				lines = append(lines, fmt.Sprintf("%s: %v", name, failures.Errors[name]))
			}
			return mcp.NewToolResultError(strings.Join(lines, "\n")), nil
		}
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(res.Message), nil
	}
}

// --- reload ---

func reloadTool() mcp.Tool {
	return mcp.NewTool("reload",
		mcp.WithDescription("Discard unsaved changes and read every document from disk again."),
	)
}

func reloadHandler(g *Guard) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return run(g, func(s *application.Session) (string, error) {
			res, err := commands.NewReloadCommand(s).Execute(ctx)
			if err != nil {
				return "", err
			}
			return res.Message, nil
		})
	}
}
