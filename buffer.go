package bitmac

import "github.com/valyala/bytebufferpool"

// Buffer is a resizable byte container drawing its backing storage from a
// shared buffer pool. It is meant for short-lived bitmaps on hot paths where
// per-operation allocations matter; call Release when done to return the
// storage to the pool.
type Buffer struct {
	bb *bytebufferpool.ByteBuffer
}

// NewBuffer creates an empty pooled byte container.
func NewBuffer() *Buffer {
	return &Buffer{bb: bytebufferpool.Get()}
}

// BufferFrom creates a pooled byte container initialized with a copy of p.
func BufferFrom(p []byte) *Buffer {
	b := NewBuffer()
	b.bb.B = append(b.bb.B, p...)
	return b
}

// WordAt returns the idx-th byte.
func (b *Buffer) WordAt(idx int) uint8 { return b.bb.B[idx] }

// Words returns the number of stored bytes.
func (b *Buffer) Words() int { return len(b.bb.B) }

// Bits returns the number of addressable bits.
func (b *Buffer) Bits() int { return len(b.bb.B) * 8 }

// SetWord replaces the idx-th byte.
func (b *Buffer) SetWord(idx int, w uint8) { b.bb.B[idx] = w }

// Resize grows or shrinks the container to exactly words bytes, filling any
// newly created bytes with fill.
func (b *Buffer) Resize(words int, fill uint8) {
	if words <= len(b.bb.B) {
		b.bb.B = b.bb.B[:words]
		return
	}
	for len(b.bb.B) < words {
		b.bb.B = append(b.bb.B, fill)
	}
}

// Bytes returns the backing bytes. Mutations are visible to the container.
// The slice is invalidated by Release.
func (b *Buffer) Bytes() []byte { return b.bb.B }

// Release returns the backing storage to the pool. The container must not be
// used afterwards.
func (b *Buffer) Release() {
	if b.bb != nil {
		bytebufferpool.Put(b.bb)
		b.bb = nil
	}
}

// String formats the bytes as binary byte groups.
func (b *Buffer) String() string { return formatWords[uint8](b) }

// BufferAllocator returns an Allocator producing zero-filled pooled byte
// containers. It never fails.
func BufferAllocator() Allocator[uint8, *Buffer] {
	return func(words int) (*Buffer, error) {
		b := NewBuffer()
		b.Resize(words, 0)
		return b, nil
	}
}
