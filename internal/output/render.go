package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmespath/go-jmespath"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Options controls how a snapshot is rendered.
type Options struct {
	Format string // json (default) or yaml
	Indent int
	// Query is an optional JMESPath expression applied before encoding.
	Query string
}

// ContentType returns the MIME type for the rendered format.
func (o Options) ContentType() string {
	if o.Format == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// Validate checks the options without rendering anything, so bad flags are
// rejected before any API call is made.
func (o Options) Validate() error {
	switch o.Format {
	case "", FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", o.Format)
	}
	if o.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", o.Indent)
	}
	if o.Query != "" {
		if _, err := jmespath.Compile(o.Query); err != nil {
			return fmt.Errorf("invalid --query expression: %w", err)
		}
	}
	return nil
}

// Render encodes v (typically []snapshot.LoadBalancerRecord). Without a query
// the struct field order is kept; the result always ends with a newline.
func Render(v any, opts Options) ([]byte, error) {
	if opts.Indent < 0 {
		return nil, fmt.Errorf("indent must not be negative, got %d", opts.Indent)
	}
	if opts.Query != "" {
		projected, err := Query(v, opts.Query)
		if err != nil {
			return nil, err
		}
		v = projected
	}

	data, err := encodeJSON(v, opts.Indent)
	if err != nil {
		return nil, err
	}

	switch opts.Format {
	case "", FormatJSON:
		return data, nil
	case FormatYAML:
		return jsonToYAML(data, opts.Indent)
	default:
		return nil, fmt.Errorf("unknown format %q (want json or yaml)", opts.Format)
	}
}

func encodeJSON(v any, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode error: %w", err)
	}
	return buf.Bytes(), nil
}

// jsonToYAML re-encodes JSON as block-style YAML. Decoding into a yaml.Node
// keeps the key order of the JSON document.
func jsonToYAML(data []byte, indent int) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("converting to yaml: %w", err)
	}
	clearStyle(&doc)

	if indent < 2 {
		indent = 2
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("converting to yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("converting to yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}
