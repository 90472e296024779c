package cryptdatum

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Kind classifies a failure.
//
//go:generate go tool stringer -type=Kind -linecomment
type Kind int8

const (
	KindNone              Kind = iota // none
	KindGeneric                       // cryptdatum
	KindIO                            // i/o
	KindUnsupportedFormat             // unsupported format
	KindInvalidHeader                 // invalid header
)

// Error is returned by every failing operation of this package. Op names the
// operation and Err, if set, carries the cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// Sentinels for errors.Is. Err matches an *Error of any kind.
var (
	Err                  = &Error{Kind: KindGeneric}
	ErrIO                = &Error{Kind: KindIO}
	ErrUnsupportedFormat = &Error{Kind: KindUnsupportedFormat}
	ErrInvalidHeader     = &Error{Kind: KindInvalidHeader}
)

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("cryptdatum")
	if e.Op != "" {
		b.WriteString(": ")
		b.WriteString(e.Op)
	}
	if e.Kind != KindGeneric && e.Kind != KindNone {
		b.WriteString(": ")
		b.WriteString(e.Kind.String())
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches target when it is a bare sentinel of the same kind, or Err.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Op != "" || t.Err != nil {
		return false
	}
	return t.Kind == KindGeneric || t.Kind == e.Kind
}

// KindOf returns the kind of err: KindNone for nil and KindGeneric for errors
// not produced by this package.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindGeneric
}

func errShortHeader(n int) error {
	return fmt.Errorf("%w: need %d bytes, got %d", io.ErrUnexpectedEOF, HeaderSize, n)
}
