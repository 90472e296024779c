package cryptdatum

import (
	"fmt"
	"slices"
)

// Rule ties one flag bit to the header field it governs. When Flag is set
// Active must hold; when it is unset Inactive must hold. A nil Inactive
// leaves the field unchecked while the flag is unset.
type Rule struct {
	Flag   Flag
	Fields string

	Active       func(Header) bool
	ActiveWant   string
	Inactive     func(Header) bool
	InactiveWant string
}

var rules = []Rule{{
	Flag:         FlagOPC,
	Fields:       "opc",
	Active:       func(h Header) bool { return h.OPC >= 1 },
	ActiveWant:   ">= 1",
	Inactive:     func(h Header) bool { return h.OPC == 0 },
	InactiveWant: "0",
}, {
	Flag:         FlagChunked,
	Fields:       "chunk size",
	Active:       func(h Header) bool { return h.ChunkSize >= 1 },
	ActiveWant:   ">= 1",
	Inactive:     func(h Header) bool { return h.ChunkSize == 0 },
	InactiveWant: "0",
}, {
	Flag:         FlagNetwork,
	Fields:       "network id",
	Active:       func(h Header) bool { return h.NetworkID >= 1 },
	ActiveWant:   ">= 1",
	Inactive:     func(h Header) bool { return h.NetworkID == 0 },
	InactiveWant: "0",
}, {
	Flag:         FlagEmpty,
	Fields:       "size",
	Active:       func(h Header) bool { return h.Size == 0 },
	ActiveWant:   "0",
	Inactive:     func(h Header) bool { return h.Size >= 1 },
	InactiveWant: ">= 1",
}, {
	Flag:         FlagChecksum,
	Fields:       "checksum",
	Active:       func(h Header) bool { return h.Checksum != 0 },
	ActiveWant:   "non-zero",
	Inactive:     func(h Header) bool { return h.Checksum == 0 },
	InactiveWant: "zero",
}, {
	Flag:       FlagCompressed,
	Fields:     "compression",
	Active:     func(h Header) bool { return h.Compression >= 1 },
	ActiveWant: ">= 1",
}, {
	Flag:       FlagEncrypted,
	Fields:     "encryption",
	Active:     func(h Header) bool { return h.Encryption >= 1 },
	ActiveWant: ">= 1",
}, {
	Flag:         FlagSigned,
	Fields:       "signature type and size",
	Active:       func(h Header) bool { return h.SignatureType >= 1 },
	ActiveWant:   "type >= 1",
	Inactive:     func(h Header) bool { return h.SignatureType == 0 && h.SignatureSize == 0 },
	InactiveWant: "0",
}, {
	Flag:         FlagMetadata,
	Fields:       "metadata spec and size",
	Active:       func(h Header) bool { return h.MetadataSpec >= 1 },
	ActiveWant:   "spec >= 1",
	Inactive:     func(h Header) bool { return h.MetadataSpec == 0 && h.MetadataSize == 0 },
	InactiveWant: "0",
}}

// Rules returns the flag/field consistency rules in evaluation order.
func Rules() []Rule {
	return slices.Clone(rules)
}

// Check reports the violation of r by h, if any.
func (r Rule) Check(h Header) error {
	if h.Flags&r.Flag != 0 {
		if !r.Active(h) {
			return fmt.Errorf("%s flag set, want %s %s", r.Flag, r.Fields, r.ActiveWant)
		}
		return nil
	}
	if r.Inactive != nil && !r.Inactive(h) {
		return fmt.Errorf("%s flag unset, want %s %s", r.Flag, r.Fields, r.InactiveWant)
	}
	return nil
}

// HasHeader reports whether data starts with something shaped like a
// Cryptdatum header: at least HeaderSize bytes framed by Magic and Delimiter.
// No other byte is inspected.
func HasHeader(data []byte) bool {
	if len(data) < HeaderSize {
		return false
	}
	return [4]byte(data[offMagic:offVersion]) == Magic &&
		[2]byte(data[offDelimiter:HeaderSize]) == Delimiter
}

// HasValidHeader reports whether data starts with a header that is both
// recognized by HasHeader and internally consistent. It does not look past
// the header, so the presence of metadata, signature or payload is not
// verified.
func HasValidHeader(data []byte) bool {
	return Validate(data) == nil
}

// Validate is HasValidHeader with a reason. It returns an error of kind
// KindUnsupportedFormat when HasHeader fails and KindInvalidHeader naming the
// first failed check otherwise.
//
// Checks run in order: version, compromised (always invalid), draft (always
// valid, nothing further is checked), timestamp, then Rules.
func Validate(data []byte) error {
	if !HasHeader(data) {
		return &Error{Kind: KindUnsupportedFormat, Op: "validate"}
	}
	h := parse(data)
	if h.Version < MinVersion {
		return invalid("version %d below minimum %d", h.Version, MinVersion)
	}
	if h.Has(FlagCompromised) {
		return invalid("compromised flag set")
	}
	if h.Has(FlagDraft) {
		return nil
	}
	if h.Timestamp < MagicDate {
		return invalid("timestamp %d before %d", h.Timestamp, MagicDate)
	}
	for _, r := range rules {
		if err := r.Check(h); err != nil {
			return &Error{Kind: KindInvalidHeader, Op: "validate", Err: err}
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return &Error{Kind: KindInvalidHeader, Op: "validate", Err: fmt.Errorf(format, args...)}
}
