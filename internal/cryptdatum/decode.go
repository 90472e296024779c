package cryptdatum

import "io"

// DecodeHeader reads exactly HeaderSize bytes from r and decodes them.
//
// A short read fails with KindIO, a missing magic or delimiter with
// KindUnsupportedFormat and an inconsistent header with KindInvalidHeader.
// On error the returned Header is the zero value. r is not closed and nothing
// past the header is consumed.
func DecodeHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, &Error{Kind: KindIO, Op: "decode", Err: err}
	}
	if !HasHeader(buf[:]) {
		return Header{}, &Error{Kind: KindUnsupportedFormat, Op: "decode"}
	}
	if err := Validate(buf[:]); err != nil {
		e := err.(*Error)
		return Header{}, &Error{Kind: e.Kind, Op: "decode", Err: e.Err}
	}
	return parse(buf[:]), nil
}
