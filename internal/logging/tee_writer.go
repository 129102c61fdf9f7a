package logging

import (
	"io"

	"go.uber.org/multierr"
)

// teeWriter copies every log line to all outputs. A failing output does not
// stop the others. The returned count is len(p) when at least one output took
// the whole line, and the error carries every failed output.
type teeWriter struct {
	outputs []io.Writer
}

func newTeeWriter(outputs ...io.Writer) *teeWriter {
	return &teeWriter{outputs: outputs}
}

func (t *teeWriter) Write(p []byte) (int, error) {
	var (
		n   int
		err error
	)
	for _, w := range t.outputs {
		written, werr := w.Write(p)
		if werr == nil && written < len(p) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		n = written
	}
	return n, err
}
