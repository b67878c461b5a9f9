package sink

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Stream writes to a stream it does not own and never closes it.
type Stream struct {
	w io.Writer
}

// NewStream returns a sink writing to w.
func NewStream(w io.Writer) Stream {
	return Stream{w: w}
}

// Write writes p to the stream.
func (s Stream) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// Close is a no-op for standard streams.
func (Stream) Close() error {
	return nil
}

// OpenFile opens path for output, truncating it unless appending.
func OpenFile(path string, appendMode bool) (*os.File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("file sink requires a path")
	}
	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(path, flags, 0o644)
}
