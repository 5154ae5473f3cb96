package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownGroup is returned when a type references a group id absent
	// from the category table. This signals a stale or inconsistent data
	// export and is fatal for the run.
	ErrUnknownGroup = zerr.New("group without category")

	// ErrUnknownIcon is returned when a type references an icon id absent
	// from the icon file table. Fatal, like ErrUnknownGroup.
	ErrUnknownIcon = zerr.New("unknown icon id")

	// ErrCorruptIndex is returned when the persisted cache index cannot be
	// parsed. Loading a corrupt index is fatal.
	ErrCorruptIndex = zerr.New("malformed cache index")

	// ErrResourceNotFound is returned by the resource store when a key is not
	// listed in the client resource index.
	ErrResourceNotFound = zerr.New("resource not found")
)
