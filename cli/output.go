package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// Output format constants
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// writeData renders data in format. YAML is converted from the JSON encoding
// so both formats share the MarshalJSON methods of the generated values.
func writeData(w io.Writer, format string, data any) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode fixture: %w", err)
	}
	switch format {
	case OutputFormatJSON:
	case OutputFormatYAML:
		out, err = yaml.JSONToYAML(out)
		if err != nil {
			return fmt.Errorf("failed to convert fixture to YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}
