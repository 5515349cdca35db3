package output

import (
	"encoding/json"
	"io"

	"copymedic/internal/rules"
)

type flusher interface {
	Flush() error
}

func flushIfPossible(w io.Writer) error {
	f, ok := w.(flusher)
	if !ok {
		return nil
	}
	return f.Flush()
}

// encodeStream writes v to w as one NDJSON line and flushes. Results are
// wrapped in a rule.result event; values of other types are ignored.
func encodeStream(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	switch t := v.(type) {
	case Event:
		if err := encoder.Encode(t); err != nil {
			return err
		}
	case rules.Result:
		if err := encoder.Encode(eventFromResult(t)); err != nil {
			return err
		}
	default:
		return nil
	}
	return flushIfPossible(w)
}
