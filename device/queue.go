//go:build !(js && wasm)

package device

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/texel"
	"github.com/gogpu/texel/transfer"
)

// Queue is the subset of hal.Queue used for uploads. A hal.Queue
// satisfies it.
type Queue interface {
	WriteBuffer(buffer hal.Buffer, offset uint64, data []byte) error
	WriteTexture(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D) error
}

// QueueUploader writes transfer buffers through a device queue.
type QueueUploader struct {
	queue Queue
}

// NewQueueUploader returns an uploader writing through q.
func NewQueueUploader(q Queue) *QueueUploader {
	return &QueueUploader{queue: q}
}

// WriteTexture uploads u into mip level mip of tex. It fails with
// texel.ErrTypeError if the format of u has no WebGPU texture format.
func (q *QueueUploader) WriteTexture(tex hal.Texture, mip uint32, u *transfer.TextureUpdate) error {
	f := u.Format()
	if _, ok := f.TextureFormat(); !ok {
		return fmt.Errorf("device: %v has no texture format: %w", f, texel.ErrTypeError)
	}

	o := u.Origin()
	e := u.Extent()
	l := u.DataLayout()
	dst := &hal.ImageCopyTexture{
		Texture:  tex,
		MipLevel: mip,
		Origin:   hal.Origin3D{X: o.X, Y: o.Y, Z: o.Z},
		Aspect:   f.TextureAspect(),
	}
	layout := &hal.ImageDataLayout{
		Offset:       l.Offset,
		BytesPerRow:  l.BytesPerRow,
		RowsPerImage: l.RowsPerImage,
	}
	size := &hal.Extent3D{
		Width:              e.Width,
		Height:             e.Height,
		DepthOrArrayLayers: e.DepthOrArrayLayers,
	}

	texel.Logger().Debug("device: write texture",
		"format", f,
		"mip", mip,
		"origin", dst.Origin,
		"size", *size,
		"bytes", len(u.Data()))

	if err := q.queue.WriteTexture(dst, u.Data(), layout, size); err != nil {
		return fmt.Errorf("device: write texture %v: %w", u.Target(), err)
	}
	return nil
}

// WriteArray uploads the records of u into buf at their target offset.
func (q *QueueUploader) WriteArray(buf hal.Buffer, u *transfer.ArrayUpdate) error {
	return q.writeBuffer(buf, uint64(u.TargetOffset()), u.Data())
}

// WriteIndices uploads the indices of u into buf at their target offset.
func (q *QueueUploader) WriteIndices(buf hal.Buffer, u *transfer.IndexUpdate) error {
	return q.writeBuffer(buf, uint64(u.TargetOffset()), u.Data())
}

func (q *QueueUploader) writeBuffer(buf hal.Buffer, offset uint64, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	texel.Logger().Debug("device: write buffer", "offset", offset, "bytes", len(data))

	if err := q.queue.WriteBuffer(buf, offset, data); err != nil {
		return fmt.Errorf("device: write buffer at %d: %w", offset, err)
	}
	return nil
}
