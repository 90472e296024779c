// Package cryptdatum reads, writes and validates the fixed 64-byte header of
// a Cryptdatum datum.
//
// A datum is laid out as
//
//	[header(64)][metadata(MetadataSize)][signature(SignatureSize)][payload(Size)]
//
// Metadata is present iff FlagMetadata is set, the signature iff FlagSigned is
// set and the payload unless FlagEmpty is set. All multi-byte header integers
// are little-endian.
package cryptdatum

//go:generate go run gen.go

import (
	"encoding/binary"
	"time"
)

const (
	// Version is the header version written by this package.
	Version uint16 = 1

	// MinVersion is the lowest header version accepted as valid.
	MinVersion uint16 = 1

	// HeaderSize is the size of a serialized header in bytes.
	HeaderSize = 64

	// MagicDate is the minimum timestamp of a non-draft header,
	// 2022-05-10T04:03:02.000000001Z in nanoseconds.
	MagicDate uint64 = 1652155382000000001
)

var (
	// Magic opens every header.
	Magic = [4]byte{0xA7, 0xF6, 0xE5, 0xD4}

	// Delimiter closes every header.
	Delimiter = [2]byte{0xA6, 0xE5}
)

// Byte offsets of the header fields. Each field ends where the next begins.
const (
	offMagic         = 0
	offVersion       = 4
	offFlags         = 6
	offTimestamp     = 14
	offOPC           = 22
	offChunkSize     = 26
	offNetworkID     = 28
	offSize          = 32
	offChecksum      = 40
	offCompression   = 48
	offEncryption    = 50
	offSignatureType = 52
	offSignatureSize = 54
	offMetadataSpec  = 56
	offMetadataSize  = 58
	offDelimiter     = 62
)

// Header is the decoded form of a 64-byte Cryptdatum header.
type Header struct {
	Version       uint16 `json:"version" yaml:"version"`
	Flags         Flag   `json:"flags" yaml:"flags"`
	Timestamp     uint64 `json:"timestamp" yaml:"timestamp"` // Unix nanoseconds
	OPC           uint32 `json:"opc" yaml:"opc"`             // operation counter
	ChunkSize     uint16 `json:"chunk_size" yaml:"chunk_size"`
	NetworkID     uint32 `json:"network_id" yaml:"network_id"`
	Size          uint64 `json:"size" yaml:"size"` // payload size
	Checksum      uint64 `json:"checksum" yaml:"checksum"`
	Compression   uint16 `json:"compression" yaml:"compression"`
	Encryption    uint16 `json:"encryption" yaml:"encryption"`
	SignatureType uint16 `json:"signature_type" yaml:"signature_type"`
	SignatureSize uint16 `json:"signature_size" yaml:"signature_size"`
	MetadataSpec  uint16 `json:"metadata_spec" yaml:"metadata_spec"`
	MetadataSize  uint32 `json:"metadata_size" yaml:"metadata_size"`
}

// Has reports whether every bit of f is set in h.Flags.
func (h Header) Has(f Flag) bool {
	return h.Flags.Has(f)
}

// Created returns the header timestamp as a time.Time.
func (h Header) Created() time.Time {
	return Time(h.Timestamp)
}

// AppendBinary appends the 64-byte encoding of h to b. It does not validate h.
func (h Header) AppendBinary(b []byte) ([]byte, error) {
	var buf [HeaderSize]byte
	h.put(buf[:])
	return append(b, buf[:]...), nil
}

// MarshalBinary returns the 64-byte encoding of h. It does not validate h.
func (h Header) MarshalBinary() ([]byte, error) {
	return h.AppendBinary(make([]byte, 0, HeaderSize))
}

// UnmarshalBinary decodes the header at the start of data with the same
// checks as DecodeHeader. On error h is left unchanged.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return &Error{Kind: KindIO, Op: "unmarshal", Err: errShortHeader(len(data))}
	}
	if err := Validate(data); err != nil {
		return err
	}
	*h = parse(data)
	return nil
}

func (h Header) put(buf []byte) {
	_ = buf[HeaderSize-1]
	le := binary.LittleEndian
	copy(buf[offMagic:offVersion], Magic[:])
	le.PutUint16(buf[offVersion:], h.Version)
	le.PutUint64(buf[offFlags:], uint64(h.Flags))
	le.PutUint64(buf[offTimestamp:], h.Timestamp)
	le.PutUint32(buf[offOPC:], h.OPC)
	le.PutUint16(buf[offChunkSize:], h.ChunkSize)
	le.PutUint32(buf[offNetworkID:], h.NetworkID)
	le.PutUint64(buf[offSize:], h.Size)
	le.PutUint64(buf[offChecksum:], h.Checksum)
	le.PutUint16(buf[offCompression:], h.Compression)
	le.PutUint16(buf[offEncryption:], h.Encryption)
	le.PutUint16(buf[offSignatureType:], h.SignatureType)
	le.PutUint16(buf[offSignatureSize:], h.SignatureSize)
	le.PutUint16(buf[offMetadataSpec:], h.MetadataSpec)
	le.PutUint32(buf[offMetadataSize:], h.MetadataSize)
	copy(buf[offDelimiter:HeaderSize], Delimiter[:])
}

// parse reads every field at its documented width. buf must hold at least
// HeaderSize bytes.
func parse(buf []byte) Header {
	_ = buf[HeaderSize-1]
	le := binary.LittleEndian
	return Header{
		Version:       le.Uint16(buf[offVersion:offFlags]),
		Flags:         Flag(le.Uint64(buf[offFlags:offTimestamp])),
		Timestamp:     le.Uint64(buf[offTimestamp:offOPC]),
		OPC:           le.Uint32(buf[offOPC:offChunkSize]),
		ChunkSize:     le.Uint16(buf[offChunkSize:offNetworkID]),
		NetworkID:     le.Uint32(buf[offNetworkID:offSize]),
		Size:          le.Uint64(buf[offSize:offChecksum]),
		Checksum:      le.Uint64(buf[offChecksum:offCompression]),
		Compression:   le.Uint16(buf[offCompression:offEncryption]),
		Encryption:    le.Uint16(buf[offEncryption:offSignatureType]),
		SignatureType: le.Uint16(buf[offSignatureType:offSignatureSize]),
		SignatureSize: le.Uint16(buf[offSignatureSize:offMetadataSpec]),
		MetadataSpec:  le.Uint16(buf[offMetadataSpec:offMetadataSize]),
		MetadataSize:  le.Uint32(buf[offMetadataSize:offDelimiter]),
	}
}

// Time converts a header timestamp to a time.Time.
func Time(ns uint64) time.Time {
	return time.Unix(int64(ns/1e9), int64(ns%1e9))
}
