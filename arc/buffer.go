package arc

import (
	json "github.com/goccy/go-json"
)

// Buffer holds a record's payload bytes. A buffer owns its data: NewBuffer
// takes the slice as-is and callers must not modify it afterward, and
// Bytes returns a read-only view under the same contract. A nil *Buffer is
// a valid empty buffer.
//
// Buffers JSON-marshal as base64 text, the standard []byte convention, so
// items serialize cleanly as fixture and store documents.
type Buffer struct {
	data []byte
}

// NewBuffer wraps data in a Buffer, taking ownership of the slice.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the payload as a read-only view. Callers must not modify
// the returned slice.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// Len returns the payload length in bytes.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

func (b *Buffer) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("null"), nil
	}
	return json.Marshal(b.data)
}

func (b *Buffer) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &b.data)
}
