//go:build ignore

// gen writes the header fixtures under testdata/v1.
package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/howijd/cryptdatum/internal/cryptdatum"
)

func minimal() cryptdatum.Header {
	return cryptdatum.Header{
		Version: cryptdatum.Version,
		Flags:   cryptdatum.FlagDraft,
	}
}

func fullFeatured() cryptdatum.Header {
	return cryptdatum.Header{
		Version: cryptdatum.Version,
		Flags: cryptdatum.FlagChecksum | cryptdatum.FlagOPC | cryptdatum.FlagCompressed |
			cryptdatum.FlagEncrypted | cryptdatum.FlagSigned | cryptdatum.FlagChunked |
			cryptdatum.FlagMetadata | cryptdatum.FlagNetwork,
		Timestamp:     uint64(time.Date(2022, 5, 10, 4, 3, 2, 1, time.UTC).UnixNano()),
		OPC:           2,
		ChunkSize:     3,
		NetworkID:     4,
		Size:          5,
		Checksum:      1234567890,
		Compression:   6,
		Encryption:    7,
		SignatureType: 8,
		SignatureSize: 9,
		MetadataSpec:  10,
		MetadataSize:  11,
	}
}

// invalidFullFeatured fails on the last rule checked.
func invalidFullFeatured() cryptdatum.Header {
	h := fullFeatured()
	h.Flags &^= cryptdatum.FlagMetadata
	return h
}

func main() {
	for name, h := range map[string]cryptdatum.Header{
		"valid-header-minimal.cdt":         minimal(),
		"valid-header-full-featured.cdt":   fullFeatured(),
		"invalid-header-full-featured.cdt": invalidFullFeatured(),
	} {
		path := filepath.Join("testdata", "v1", name)
		data, err := h.MarshalBinary()
		if err == nil {
			err = os.WriteFile(path, data, 0640)
		}
		if err != nil {
			slog.Error("failed to write fixture", slog.String("file", path), slog.Any("err", err))
			os.Exit(1)
		}
		slog.Info("wrote fixture", slog.String("file", path), slog.String("flags", h.Flags.Describe()))
	}
}
