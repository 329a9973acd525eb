package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/benfrussell/AutoCopilot/pkg/domain"
	"gopkg.in/yaml.v3"
)

// ErrEncode is returned when a tree cannot be encoded, typically because an
// action parameter holds a value the format cannot represent.
var ErrEncode = errors.New("failed to encode instructions")

// ErrUnknownFormat is returned for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown format")

// Format selects the text representation.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-supplied name (case-insensitive, "yml" allowed) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// Options tunes the encoder.
type Options struct {
	// Indent pretty-prints JSON with two spaces. YAML is always indented.
	Indent bool
}

// Marshal encodes the tree rooted at root in the given format.
// Output is deterministic for an unchanged tree.
func Marshal(root domain.Object, format Format, opts Options) ([]byte, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil root", ErrEncode)
	}
	doc := FromObject(root)

	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if opts.Indent {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncode, err)
		}
		return bytes.TrimRight(buf.Bytes(), "\n"), nil
	case FormatYAML:
		out, err := marshalYAML(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncode, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// marshalYAML converts yaml.v3 panics on unsupported values into errors.
func marshalYAML(doc Document) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("yaml: %v", r)
		}
	}()
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
