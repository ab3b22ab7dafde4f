package layout

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Hasher accumulates a structural hash over every property that can affect
// layout. Equal hashes let the runtime reuse a cached layout instead of
// re-running the layout pass.
type Hasher struct {
	buf [8]byte
	h   interface {
		Write([]byte) (int, error)
		Sum64() uint64
	}
}

// NewHasher returns an empty layout hasher.
func NewHasher() *Hasher {
	return &Hasher{h: fnv.New64a()}
}

// WriteFloat64 folds a float into the hash.
func (h *Hasher) WriteFloat64(v float64) {
	binary.LittleEndian.PutUint64(h.buf[:], math.Float64bits(v))
	_, _ = h.h.Write(h.buf[:])
}

// WriteUint64 folds an unsigned integer into the hash.
func (h *Hasher) WriteUint64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.h.Write(h.buf[:])
}

// WriteInt folds an integer into the hash.
func (h *Hasher) WriteInt(v int) {
	h.WriteUint64(uint64(v))
}

// WriteBool folds a boolean into the hash.
func (h *Hasher) WriteBool(v bool) {
	if v {
		h.WriteUint64(1)
	} else {
		h.WriteUint64(0)
	}
}

// WriteString folds a string into the hash, length-prefixed so adjacent
// strings cannot collide by concatenation.
func (h *Hasher) WriteString(s string) {
	h.WriteInt(len(s))
	_, _ = h.h.Write([]byte(s))
}

// Sum returns the accumulated hash.
func (h *Hasher) Sum() uint64 {
	return h.h.Sum64()
}
