// Package pngstream is the streaming state machine of spec.md §4.2: it
// slices an arbitrary-sized input stream into header/length/type/data/CRC
// segments regardless of buffer boundaries, verifying each chunk's CRC and
// handing it to the order validator and the per-chunk semantic validators
// in byte-stream order.
package pngstream

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"

	"github.com/brnrdo/pngvet/internal/chunkset"
	"github.com/brnrdo/pngvet/internal/crc32png"
	"github.com/brnrdo/pngvet/internal/order"
	"github.com/brnrdo/pngvet/internal/pngerr"
	"github.com/brnrdo/pngvet/internal/render"
)

// state is the ParserState sum type of spec.md §3: AwaitSignature,
// AwaitChunkPrefix, AwaitChunkBody, AwaitChunkCrc.
type state int

const (
	stateAwaitSignature state = iota
	stateAwaitChunkPrefix
	stateAwaitChunkBody
	stateAwaitChunkCrc
)

var pngSignature = [8]byte{137, 80, 78, 71, 13, 10, 26, 10}

// maxChunkLength is 2^31-1, the hard ceiling from the PNG specification
// itself (spec.md §4.2's LengthTooLarge check), independent of any
// configured maxChunkBytes cap.
const maxChunkLength = 1<<31 - 1

// Parser is the pull-fed PNG stream state machine. It owns exactly one
// dynamically sized body buffer at a time, released no later than when its
// chunk has been validated (spec.md §5). A Parser that has returned an
// error from Feed or Finish is poisoned and must be discarded.
type Parser struct {
	state state

	sigBuf [8]byte
	sigGot int

	prefixBuf [8]byte
	prefixGot int

	body    []byte
	bodyGot int

	crcBuf [4]byte
	crcGot int

	length   uint32
	typeCode [4]byte

	ctx  *order.Context
	sink render.Sink

	maxChunkBytes uint32

	poisoned bool
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithMaxChunkBytes overrides the default 2^31-1 cap on a single chunk's
// declared body length (spec.md §5). Chunks whose declared length exceeds
// it fail with ChunkTooLarge rather than allocating the body buffer.
func WithMaxChunkBytes(n uint32) Option {
	return func(p *Parser) { p.maxChunkBytes = n }
}

// WithSink attaches the render.Sink that receives one Event per
// successfully validated chunk. Without a sink, chunks are still validated
// but nothing is emitted.
func WithSink(s render.Sink) Option {
	return func(p *Parser) { p.sink = s }
}

// New constructs a Parser in AwaitSignature with an empty OrderingContext.
func New(opts ...Option) *Parser {
	p := &Parser{
		state:         stateAwaitSignature,
		ctx:           order.New(),
		maxChunkBytes: maxChunkLength,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Feed consumes the full slice, completing zero or more chunks. It never
// partial-reads: every byte of data is consumed unless a fatal error is
// returned, in which case the parser is poisoned and must be discarded.
func (p *Parser) Feed(data []byte) error {
	if p.poisoned {
		return errors.WithStack(pngerr.New(pngerr.ParserPoisoned, "parser already returned a fatal error"))
	}
	if err := p.feed(data); err != nil {
		p.poisoned = true
		return errors.WithStack(err)
	}
	return nil
}

func copyInto(buf []byte, got *int, data []byte) int {
	n := copy(buf[*got:], data)
	*got += n
	return n
}

func (p *Parser) feed(data []byte) error {
	for len(data) > 0 {
		switch p.state {
		case stateAwaitSignature:
			data = data[copyInto(p.sigBuf[:], &p.sigGot, data):]
			if p.sigGot == len(p.sigBuf) {
				if p.sigBuf != pngSignature {
					return pngerr.New(pngerr.BadSignature, fmt.Sprintf("got %x", p.sigBuf))
				}
				p.sigGot = 0
				p.state = stateAwaitChunkPrefix
			}

		case stateAwaitChunkPrefix:
			data = data[copyInto(p.prefixBuf[:], &p.prefixGot, data):]
			if p.prefixGot == len(p.prefixBuf) {
				length := binary.BigEndian.Uint32(p.prefixBuf[0:4])
				if length > maxChunkLength {
					return pngerr.New(pngerr.LengthTooLarge, fmt.Sprintf("declared length %d exceeds 2^31-1", length))
				}
				if length > p.maxChunkBytes {
					return pngerr.New(pngerr.ChunkTooLarge, fmt.Sprintf("declared length %d exceeds configured maximum %d", length, p.maxChunkBytes))
				}
				copy(p.typeCode[:], p.prefixBuf[4:8])
				p.length = length
				p.prefixGot = 0

				if length == 0 {
					// The deliberate fall-through of spec.md §9: a
					// zero-length chunk skips the body phase entirely,
					// expressed here as an explicit branch rather than
					// implicit fallthrough.
					p.body = nil
					p.state = stateAwaitChunkCrc
				} else {
					p.body = make([]byte, length)
					p.bodyGot = 0
					p.state = stateAwaitChunkBody
				}
			}

		case stateAwaitChunkBody:
			n := copy(p.body[p.bodyGot:], data)
			p.bodyGot += n
			data = data[n:]
			if p.bodyGot == len(p.body) {
				p.state = stateAwaitChunkCrc
			}

		case stateAwaitChunkCrc:
			data = data[copyInto(p.crcBuf[:], &p.crcGot, data):]
			if p.crcGot == len(p.crcBuf) {
				crcField := binary.BigEndian.Uint32(p.crcBuf[:])
				p.crcGot = 0
				if err := p.completeChunk(crcField); err != nil {
					return err
				}
				p.body = nil
				p.state = stateAwaitChunkPrefix
			}
		}
	}
	return nil
}

// completeChunk runs §4.3 (CRC and type-code validation) and §4.4 (chunk
// dispatch, preceded by the order validator) over the just-accumulated
// chunk.
func (p *Parser) completeChunk(crcField uint32) error {
	typeStr := string(p.typeCode[:])

	expected := crc32png.ChunkCRC(p.typeCode, p.body)
	if expected != crcField {
		return pngerr.ForChunk(pngerr.CrcMismatch, typeStr, fmt.Sprintf("computed %#08x, field has %#08x", expected, crcField))
	}
	if !chunkset.ValidTypeCode(p.typeCode) {
		return pngerr.New(pngerr.BadChunkType, fmt.Sprintf("type code %q has a non-letter byte", typeStr))
	}

	c := chunkset.Chunk{Type: p.typeCode, Body: p.body, CRC: crcField}
	kind := c.Kind()

	spltName := ""
	if kind == chunkset.KindsPLT {
		if nul := bytes.IndexByte(c.Body, 0); nul != -1 {
			spltName = string(c.Body[:nul])
		}
	}

	if err := p.ctx.Admit(kind, typeStr, spltName); err != nil {
		return err
	}

	res, err := chunkset.Validate(c, p.ctx.ColorType())
	if err != nil {
		return err
	}
	if res.IHDR != nil {
		p.ctx.SetColorType(res.IHDR.ColorType)
	}

	if p.sink != nil && res.Line != "" {
		if err := p.sink.Emit(render.Event{Kind: typeStr, Line: res.Line}); err != nil {
			return pngerr.New(pngerr.IoError, err.Error())
		}
	}
	return nil
}

// Finish asserts terminal acceptance (spec.md §4.2): the parser must be
// sitting between chunks (AwaitChunkPrefix, nothing accumulated) and the
// stream must have reached IEND.
func (p *Parser) Finish() error {
	if p.poisoned {
		return errors.WithStack(pngerr.New(pngerr.ParserPoisoned, "parser already returned a fatal error"))
	}
	if p.state != stateAwaitChunkPrefix || p.prefixGot != 0 {
		p.poisoned = true
		return errors.WithStack(pngerr.New(pngerr.UnexpectedEof, "stream ended in the middle of a chunk"))
	}
	if err := p.ctx.Finish(); err != nil {
		p.poisoned = true
		return errors.WithStack(err)
	}
	return nil
}
