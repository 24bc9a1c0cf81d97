// Package device hands filled transfer buffers to the GPU.
//
// RegionUploader targets any texture implementing
// gpucontext.TextureRegionUpdater. QueueUploader writes through a
// wgpu/hal queue and covers textures as well as vertex and index buffers.
// Both convert the bottom-left regions of an update into the top-left
// origin expected by the device.
package device

import (
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/texel"
	"github.com/gogpu/texel/transfer"
)

// RegionUploader uploads texture updates with UpdateRegion.
type RegionUploader struct {
	dst gpucontext.TextureRegionUpdater
}

// NewRegionUploader returns an uploader writing into dst.
func NewRegionUploader(dst gpucontext.TextureRegionUpdater) *RegionUploader {
	return &RegionUploader{dst: dst}
}

// Upload writes the buffer of u into the target area of the texture.
func (r *RegionUploader) Upload(u *transfer.TextureUpdate) error {
	o := u.Origin()
	e := u.Extent()
	texel.Logger().Debug("device: update region",
		"format", u.Format(),
		"x", o.X, "y", o.Y,
		"w", e.Width, "h", e.Height)

	if err := r.dst.UpdateRegion(int(o.X), int(o.Y), int(e.Width), int(e.Height), u.Data()); err != nil {
		return fmt.Errorf("device: update region of %v: %w", u.Target(), err)
	}
	return nil
}
