// Package evecache implements the resource store against the game client's
// content delivery network, keeping a local on-disk cache of downloaded
// resources.
package evecache

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// indexEntry is one file listed in a client index: its CDN path, md5 content
// hash, and sizes.
type indexEntry struct {
	path       string
	md5        string
	size       uint64
	compressed uint64
}

// parseIndex parses a client index file. Each line is
// "resource,path,md5,size,compressedSize[,permissions]"; the permission field
// is ignored. Resource keys are normalized to lowercase forward-slash form.
func parseIndex(text string) (map[string]indexEntry, error) {
	index := make(map[string]indexEntry)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.SplitN(line, ",", 6)
		if len(fields) < 5 {
			return nil, zerr.With(zerr.New("malformed index line"), "line", line)
		}

		size, err := strconv.ParseUint(fields[3], 10, 64)
		if err != nil {
			return nil, zerr.Wrap(err, "malformed index size field")
		}
		compressed, err := strconv.ParseUint(fields[4], 10, 64)
		if err != nil {
			return nil, zerr.Wrap(err, "malformed index compressed-size field")
		}

		index[normalizeKey(fields[0])] = indexEntry{
			path:       fields[1],
			md5:        fields[2],
			size:       size,
			compressed: compressed,
		}
	}
	return index, nil
}

// normalizeKey canonicalizes a resource key the way the client index does:
// lowercase with forward slashes.
func normalizeKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "\\", "/"))
}
