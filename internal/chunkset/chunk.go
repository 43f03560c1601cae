// Package chunkset implements the per-chunk-type semantic validators for
// the PNG chunks this inspector recognizes (spec.md §3, §4.4, §4.5), plus
// the chunk data model and type-code property bits (spec.md §3).
//
// A Chunk's Body is a borrowed view into the parser's scratch buffer: it is
// only valid for the duration of one Validate call and must never be
// retained past it (spec.md §9, "re-architecting pointer-into-buffer chunk
// references").
package chunkset

// Chunk is a single validated-CRC, validated-type-code chunk handed to a
// per-type validator. Body is borrowed; see the package doc comment.
type Chunk struct {
	Type [4]byte
	Body []byte
	CRC  uint32
}

// Kind reports which recognized chunk type this chunk is, or KindUnknown.
func (c Chunk) Kind() Kind { return KindFromCode(c.Type) }

// Critical reports whether bit 5 of the type code's first byte is clear,
// i.e. whether a conforming reader must understand this chunk to proceed.
func (c Chunk) Critical() bool { return c.Type[0]&0x20 == 0 }

// Public reports whether this chunk type is defined by the PNG
// specification (vs. a private/vendor extension), per bit 5 of byte 1.
func (c Chunk) Public() bool { return c.Type[1]&0x20 == 0 }

// ReservedBitClear reports whether byte 2's bit 5 is clear, as the PNG
// specification requires of every valid chunk (spec.md §3).
func (c Chunk) ReservedBitClear() bool { return c.Type[2]&0x20 == 0 }

// SafeToCopy reports whether bit 5 of the type code's fourth byte is clear.
func (c Chunk) SafeToCopy() bool { return c.Type[3]&0x20 == 0 }

// TypeString renders the four-byte type code as a string for error
// messages and textual output.
func (c Chunk) TypeString() string { return string(c.Type[:]) }
