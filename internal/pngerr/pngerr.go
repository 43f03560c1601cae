// Package pngerr defines the fatal error taxonomy shared by the stream
// state machine, the ordering validator, and the per-chunk semantic
// validators. Every error in this taxonomy is fatal to the current
// stream: there is no in-band recovery, and a *Parser that has returned
// one must be discarded by the caller.
package pngerr

import "fmt"

// Code enumerates the error kinds from spec.md §7.
type Code int

const (
	_ Code = iota
	IoError
	OutOfMemory
	BadSignature
	LengthTooLarge
	CrcMismatch
	BadChunkType
	UnknownCriticalChunk
	BadChunkOrder
	BadChunkBody
	MissingIEND
	UnexpectedEof
	ChunkTooLarge
	ParserPoisoned
)

var codeNames = map[Code]string{
	IoError:              "IoError",
	OutOfMemory:          "OutOfMemory",
	BadSignature:         "BadSignature",
	LengthTooLarge:       "LengthTooLarge",
	CrcMismatch:          "CrcMismatch",
	BadChunkType:         "BadChunkType",
	UnknownCriticalChunk: "UnknownCriticalChunk",
	BadChunkOrder:        "BadChunkOrder",
	BadChunkBody:         "BadChunkBody",
	MissingIEND:          "MissingIEND",
	UnexpectedEof:        "UnexpectedEof",
	ChunkTooLarge:        "ChunkTooLarge",
	ParserPoisoned:       "ParserPoisoned",
}

func (c Code) String() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Error is a structured fatal validation error. Kind and Rule are optional
// detail: Kind names the offending chunk's four-byte type code (or "" for
// stream-level errors that precede any chunk, like BadSignature), and Rule
// names the specific invariant that was violated.
type Error struct {
	Code Code
	Kind string
	Rule string
}

func (e *Error) Error() string {
	switch {
	case e.Kind == "" && e.Rule == "":
		return e.Code.String()
	case e.Rule == "":
		return fmt.Sprintf("%s: chunk %q", e.Code, e.Kind)
	case e.Kind == "":
		return fmt.Sprintf("%s: %s", e.Code, e.Rule)
	default:
		return fmt.Sprintf("%s: chunk %q: %s", e.Code, e.Kind, e.Rule)
	}
}

// New builds a stream-level error with no offending chunk.
func New(code Code, rule string) error {
	return &Error{Code: code, Rule: rule}
}

// ForChunk builds an error naming the offending chunk kind.
func ForChunk(code Code, kind string, rule string) error {
	return &Error{Code: code, Kind: kind, Rule: rule}
}

// Is allows errors.Is(err, pngerr.New(SomeCode, "")) to match on Code alone,
// ignoring Kind/Rule, which is how callers check "was this a CrcMismatch"
// without caring about the detail strings.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
