// Package ports defines the interfaces between the icon pipeline core and its
// adapters.
package ports

//go:generate mockgen -source=resource_store.go -destination=mocks/mock_resource_store.go -package=mocks

// ResourceStore resolves symbolic res:/ keys against the game's shared
// resource cache, whether backed by a local install or the content delivery
// network.
type ResourceStore interface {
	// Version returns the game client version the resource index was loaded
	// for.
	Version() string
	// HasResource reports whether the key is listed in the resource index.
	HasResource(key string) bool
	// PathOf returns a local filesystem path for the resource, downloading it
	// on demand.
	PathOf(key string) (string, error)
	// HashOf returns the content hash of the resource as recorded in the
	// index, without downloading the payload.
	HashOf(key string) (string, error)
}
