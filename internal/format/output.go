// Package format writes structured (non-text) command output.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Envelope wraps every structured payload so consumers can rely on a
// top-level "data" key.
type Envelope struct {
	Data any `json:"data"`
}

// Structured reports whether format is one of the machine-readable formats.
func Structured(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "edn":
		return true
	default:
		return false
	}
}

// Write writes v wrapped in an Envelope in the requested format (json|edn).
func Write(w io.Writer, v any, format string, pretty bool) error {
	env := Envelope{Data: v}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return WriteJSON(w, env, pretty)
	case "edn":
		return WriteEDN(w, env, pretty)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON followed by a newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
