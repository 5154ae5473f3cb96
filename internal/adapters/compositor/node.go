package compositor

import (
	"context"

	"github.com/grindlemire/graft"
)

const (
	NativeNodeID graft.ID = "adapter.compositor_native"
	MagickNodeID graft.ID = "adapter.compositor_magick"
)

func init() {
	graft.Register(graft.Node[*Native]{
		ID:        NativeNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Native, error) {
			return NewNative(), nil
		},
	})
	graft.Register(graft.Node[*Magick]{
		ID:        MagickNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Magick, error) {
			return NewMagick(), nil
		},
	})
}
