// Package iojson holds the CLI's machine-readable IO helpers: JSON
// output for --json flags and raw text input for -f/stdin flags.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// errEnvelope is the stderr shape emitted when the payload itself cannot
// be marshaled. Consumers of --json output always receive JSON on one of
// the two streams.
type errEnvelope struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// WriteWith marshals obj as indented JSON to w. A marshal failure writes
// an error envelope to ew instead; since the envelope is built from plain
// strings it cannot itself fail to marshal.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		env, _ := json.Marshal(errEnvelope{
			Message: "marshal command output",
			Data:    map[string]any{"error": err.Error()},
		})
		_, werr := fmt.Fprintln(ew, string(env))
		return werr
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
