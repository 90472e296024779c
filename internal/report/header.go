package report

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/howijd/cryptdatum/internal/cryptdatum"
)

const green = "\033[32m"

// HeaderReport describes one decoded header.
type HeaderReport struct {
	File    string            `json:"file" yaml:"file"`
	Created time.Time         `json:"created" yaml:"created"`
	Flags   []string          `json:"flags" yaml:"flags"`
	Header  cryptdatum.Header `json:"header" yaml:"header"`
}

func NewHeaderReport(file string, h cryptdatum.Header) *HeaderReport {
	flags := h.Flags.Names()
	if flags == nil {
		flags = []string{}
	}
	return &HeaderReport{
		File:    file,
		Created: h.Created().UTC(),
		Flags:   flags,
		Header:  h,
	}
}

type field struct {
	name  string
	size  int
	typ   string
	value uint64
	desc  string
}

func (r *HeaderReport) fields() []field {
	h := r.Header
	return []field{
		{"version", 2, "uint16", uint64(h.Version), "format version"},
		{"flags", 8, "uint64", uint64(h.Flags), h.Flags.Describe()},
		{"timestamp", 8, "uint64", h.Timestamp, "creation time, Unix ns"},
		{"opc", 4, "uint32", uint64(h.OPC), "operation counter"},
		{"chunk size", 2, "uint16", uint64(h.ChunkSize), "payload chunk size"},
		{"network id", 4, "uint32", uint64(h.NetworkID), "source network"},
		{"size", 8, "uint64", h.Size, "payload size"},
		{"checksum", 8, "uint64", h.Checksum, "payload checksum"},
		{"compression", 2, "uint16", uint64(h.Compression), "compression algorithm"},
		{"encryption", 2, "uint16", uint64(h.Encryption), "encryption algorithm"},
		{"signature type", 2, "uint16", uint64(h.SignatureType), "signature algorithm"},
		{"signature size", 2, "uint16", uint64(h.SignatureSize), "signature length"},
		{"metadata spec", 2, "uint16", uint64(h.MetadataSpec), "metadata format"},
		{"metadata size", 4, "uint32", uint64(h.MetadataSize), "metadata length"},
	}
}

// Sections implements Sectioned: a summary, the field table and the flag
// table.
func (r *HeaderReport) Sections(color bool) []Section {
	summary := [][2]string{
		{"File", r.File},
		{"Size", humanize.IBytes(r.Header.Size)},
		{"Created", r.Created.Format(time.RFC3339Nano) + " (" + humanize.Time(r.Created) + ")"},
	}

	fields := NewTableData("Field", "Size (B)", "Type", "Value", "Description")
	for _, f := range r.fields() {
		fields.AddRow(f.name, strconv.Itoa(f.size), f.typ, strconv.FormatUint(f.value, 10), f.desc)
	}

	flags := NewTableData("Flag", "Bit", "Set")
	for _, f := range cryptdatum.AllFlags {
		set := strconv.FormatBool(r.Header.Has(f))
		if r.Header.Has(f) {
			set = colorize(color, green, set)
		}
		flags.AddRow(f.String(), strconv.FormatUint(uint64(f), 10), set)
	}

	return []Section{
		{Pairs: summary},
		{Title: "HEADER", Table: fields},
		{Title: "FLAGS", Table: flags},
	}
}
