// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	ReadFrom(r io.Reader) (int64, error)
	Bytes() []byte
	String() string
	Len() int
	Reset()
}

// Pool defines the interface for buffer pooling.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// pool wraps [bytebufferpool.Pool] to implement Pool interface.
type pool struct{ p *bytebufferpool.Pool }

// Get returns an empty buffer from the pool.
func (p *pool) Get() Buffer { return p.p.Get() }

// Put resets b and returns it to the pool. Buffers that were not obtained
// from a bytebufferpool are dropped.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		p.p.Put(buf)
	}
}

// Default is the process-wide buffer pool.
//
// Example usage for reading a file whole:
//
//	content, err := gc.ReadString(gc.Default, file)
//	if err != nil {
//		return "", fmt.Errorf("error reading file: %w", err)
//	}
var Default Pool = &pool{p: &bytebufferpool.Pool{}}

// ReadString drains r into a pooled buffer and returns a copy of its contents.
// The buffer is reset and handed back to p on every return path.
//
// Parameters:
//   - p: Pool to borrow the buffer from
//   - r: Reader to drain until EOF
//
// Returns:
//   - string: Everything read from r
//   - error: The first non-EOF read error
func ReadString(p Pool, r io.Reader) (string, error) {
	buf := p.Get()
	defer func() {
		buf.Reset()
		p.Put(buf)
	}()

	if _, err := buf.ReadFrom(r); err != nil {
		return "", err
	}
	return buf.String(), nil
}
