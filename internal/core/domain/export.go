package domain

import "sort"

// ServiceMetadata maps each type id to the cache filename serving each of its
// icon kinds. It is rebuilt every run and persisted only by the service
// bundle publisher.
type ServiceMetadata map[int32]map[IconKind]string

// Set records that the given kind of a type is served by filename.
func (m ServiceMetadata) Set(typeID int32, kind IconKind, filename string) {
	kinds, ok := m[typeID]
	if !ok {
		kinds = make(map[IconKind]string)
		m[typeID] = kinds
	}
	kinds[kind] = filename
}

// SortedTypeIDs returns the type ids present in the metadata in ascending
// order.
func (m ServiceMetadata) SortedTypeIDs() []int32 {
	ids := make([]int32, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ExportState is the result of a completed icon build and the input to every
// publisher: the cache directory, the final index, the per-type metadata, and
// the run's index diff.
type ExportState struct {
	CacheDir string
	Files    []string // current index, sorted
	Metadata ServiceMetadata
	Added    int
	Removed  int
}

// Fresh reports whether the run changed nothing relative to the prior index.
func (s *ExportState) Fresh() bool {
	return s.Added == 0 && s.Removed == 0
}
