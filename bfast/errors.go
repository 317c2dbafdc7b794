package bfast

import "fmt"

// Kind enumerates the distinct BFAST structural failure modes (spec §4.1/§7).
type Kind int

const (
	// KindIO covers underlying file/stream I/O failures.
	KindIO Kind = iota
	// KindTruncated means the blob is shorter than the 32-byte header, or
	// too short to hold its own declared offset table.
	KindTruncated
	// KindBadMagic means the first 8 bytes matched neither Magic nor its
	// swapped form.
	KindBadMagic
	// KindDifferentEndian means the first 8 bytes were Magic with its
	// bytes reversed: a same-format blob produced by a machine of the
	// opposite endianness. Detected, not converted.
	KindDifferentEndian
	// KindOffsetOutOfRange means an offset-table entry's begin/end fell
	// outside the blob, or begin > end.
	KindOffsetOutOfRange
	// KindOffsetOrder means offset-table entries were not ordered and
	// non-overlapping.
	KindOffsetOrder
	// KindNameCountMismatch means the number of NUL-terminated names in
	// buffer 0 didn't equal num_arrays - 1.
	KindNameCountMismatch
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io error"
	case KindTruncated:
		return "truncated"
	case KindBadMagic:
		return "bad magic"
	case KindDifferentEndian:
		return "different endian"
	case KindOffsetOutOfRange:
		return "offset out of range"
	case KindOffsetOrder:
		return "offset order"
	case KindNameCountMismatch:
		return "name count mismatch"
	default:
		return fmt.Sprintf("bfast error kind %d", int(k))
	}
}

// Error is the structured error type every bfast parse/write failure is
// reported as. Offset is the byte offset into the blob where the violation
// was detected, or -1 when not applicable.
type Error struct {
	Kind    Kind
	Offset  int64
	Context string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Context != "" {
		msg = e.Context + ": " + msg
	}
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s (at byte %d)", msg, e.Offset)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap exposes Cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newErr(kind Kind, offset int64, context string) *Error {
	return &Error{Kind: kind, Offset: offset, Context: context}
}

func wrapErr(kind Kind, offset int64, context string, cause error) *Error {
	return &Error{Kind: kind, Offset: offset, Context: context, Cause: cause}
}
