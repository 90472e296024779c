package cryptdatum

import (
	"strconv"
	"strings"
)

// Flag is the header feature bitset. Each bit records that a capability is in
// use; the bits a validator constrains are listed in Rules.
//
//go:generate go tool stringer -type=Flag -linecomment
type Flag uint64

const (
	FlagInvalid     Flag = 1 << iota // invalid
	FlagDraft                        // draft
	FlagEmpty                        // empty
	FlagChecksum                     // checksum
	FlagOPC                          // opc
	FlagCompressed                   // compressed
	FlagEncrypted                    // encrypted
	FlagExtractable                  // extractable
	FlagSigned                       // signed
	FlagChunked                      // chunked
	FlagMetadata                     // metadata
	FlagCompromised                  // compromised
	FlagBigEndian                    // big-endian
	FlagNetwork                      // network
)

// AllFlags lists the defined flag bits in bit order.
var AllFlags = []Flag{
	FlagInvalid,
	FlagDraft,
	FlagEmpty,
	FlagChecksum,
	FlagOPC,
	FlagCompressed,
	FlagEncrypted,
	FlagExtractable,
	FlagSigned,
	FlagChunked,
	FlagMetadata,
	FlagCompromised,
	FlagBigEndian,
	FlagNetwork,
}

// Has reports whether every bit of f is set in fs.
func (fs Flag) Has(f Flag) bool {
	return fs&f == f
}

// Names returns the names of the defined bits set in fs, in bit order.
func (fs Flag) Names() []string {
	var names []string
	for _, f := range AllFlags {
		if fs&f != 0 {
			names = append(names, f.String())
		}
	}
	return names
}

// Undefined returns the bits of fs that have no defined meaning.
func (fs Flag) Undefined() Flag {
	var defined Flag
	for _, f := range AllFlags {
		defined |= f
	}
	return fs &^ defined
}

// Describe joins the names of the set bits with "|". Undefined bits are
// appended as a hex literal.
func (fs Flag) Describe() string {
	names := fs.Names()
	if u := fs.Undefined(); u != 0 {
		names = append(names, "0x"+strconv.FormatUint(uint64(u), 16))
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}
