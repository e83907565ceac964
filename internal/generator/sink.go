package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// Sink receives generated records. Implementations own any buffering or
// persistence; the generator only guarantees write order.
type Sink interface {
	Write(ctx context.Context, rec Record) error
	Close() error
}

// JSONSink streams records as JSON lines.
type JSONSink struct {
	enc *json.Encoder
}

// NewJSONSink creates a sink writing one JSON object per line to w.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{enc: json.NewEncoder(w)}
}

// Write encodes one record followed by a newline.
func (s *JSONSink) Write(_ context.Context, rec Record) error {
	if err := s.enc.Encode(rec); err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	return nil
}

// Close is a no-op; the caller owns the underlying writer.
func (s *JSONSink) Close() error {
	return nil
}
