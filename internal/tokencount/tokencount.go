// Package tokencount estimates LLM prompt tokens for dumped content
// using tiktoken encodings.
package tokencount

import (
	"errors"
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// ErrUnknownEncoding indicates the encoding name is not a tiktoken one.
var ErrUnknownEncoding = errors.New("unknown token encoding")

// Counter counts tokens with a fixed tiktoken encoding. Safe for reuse
// across files within a run.
type Counter struct {
	enc *tiktoken.Tiktoken
}

// New creates a Counter for the named encoding (e.g. "cl100k_base").
func New(encoding string) (*Counter, error) {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownEncoding, encoding, err)
	}
	return &Counter{enc: enc}, nil
}

// Count returns the number of tokens in text.
func (c *Counter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}
