package commands

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"contentmgr/internal/application"
	"contentmgr/internal/domain"
)

// Export formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ExportResult holds the serialized node
type ExportResult struct {
	Document string
	Path     domain.Path
	Format   string
	Data     []byte
}

// ExportCommand serializes a document or a subtree as JSON or YAML,
// keeping key order
type ExportCommand struct {
	session  *application.Session
	Document string
	Path     domain.Path
	Format   string
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(session *application.Session, document string, path domain.Path, format string) *ExportCommand {
	return &ExportCommand{
		session:  session,
		Document: document,
		Path:     path,
		Format:   format,
	}
}

// Validate checks the document and format
func (c *ExportCommand) Validate() error {
	if err := application.ValidateRequired("document", c.Document); err != nil {
		return err
	}
	switch c.Format {
	case "", FormatJSON, FormatYAML:
		return nil
	default:
		return &application.ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("expected json or yaml, got: %s", c.Format),
		}
	}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	doc, err := c.session.Document(c.Document)
	if err != nil {
		return nil, err
	}
	node, err := domain.Resolve(doc, c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to export %s: %w", c.Path, err)
	}

	format := c.Format
	if format == "" {
		format = FormatJSON
	}

	var data []byte
	switch format {
	case FormatYAML:
		data, err = EncodeYAML(node)
	default:
		if node.IsMap() {
			data, err = domain.EncodeDocument(node)
		} else {
			data, err = node.MarshalJSON()
			data = append(data, '\n')
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to export %s as %s: %w", c.Path, format, err)
	}

	return &ExportResult{
		Document: c.Document,
		Path:     c.Path,
		Format:   format,
		Data:     data,
	}, nil
}

// EncodeYAML renders a node as YAML with mapping keys in document order
func EncodeYAML(n *domain.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(n)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yamlNode(n *domain.Node) *yaml.Node {
	switch n.Kind() {
	case domain.KindMap:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		n.Each(func(key string, value *domain.Node) {
			out.Content = append(out.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				yamlNode(value))
		})
		return out
	case domain.KindList:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range n.Items() {
			out.Content = append(out.Content, yamlNode(item))
		}
		return out
	case domain.KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(n.BoolValue())}
	case domain.KindInt:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: n.Text()}
	case domain.KindFloat:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: n.Text()}
	case domain.KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.StringValue()}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
