package domain

import (
	"bytes"
	"sort"
	"strings"
	"unicode/utf8"

	"go.trai.ch/zerr"
)

// IndexSeparator delimits filenames in the persisted cache index. Cache
// filenames are built from variant tags and hex hashes, so the record
// separator byte can never occur inside one.
const IndexSeparator byte = 0x1E

// EncodeIndex serializes a set of cache filenames to the flat index record.
// Entries are sorted so that identical sets always produce identical bytes.
func EncodeIndex(files []string) []byte {
	sorted := make([]string, len(files))
	copy(sorted, files)
	sort.Strings(sorted)

	var buf bytes.Buffer
	for i, name := range sorted {
		if i > 0 {
			buf.WriteByte(IndexSeparator)
		}
		buf.WriteString(name)
	}
	return buf.Bytes()
}

// DecodeIndex parses a persisted index record back into its filename set.
// A malformed record is fatal: rebuilding from a corrupt index could publish
// a cache state that never existed.
func DecodeIndex(data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, nil
	}

	entries := strings.Split(string(data), string(IndexSeparator))
	for _, entry := range entries {
		if entry == "" || !utf8.ValidString(entry) || strings.ContainsAny(entry, "/\\") {
			return nil, zerr.With(zerr.Wrap(ErrCorruptIndex, "decode index"), "entry", entry)
		}
	}
	return entries, nil
}
