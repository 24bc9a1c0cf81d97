// Package texel computes the binary layout of texels and vertex records and
// reads and writes them inside raw transfer buffers.
//
// # Overview
//
// Uploading data to a GPU means producing a byte buffer whose layout is
// bit-exact with what the graphics API expects for a given pixel format or
// vertex layout. texel provides the pieces needed to build such buffers
// safely:
//
//   - fixedpoint: normalized fixed-point conversions
//   - format: the closed catalog of pixel formats and their metadata
//   - layout: strictly packed vertex attribute layouts
//   - region: inclusive integer ranges and areas
//   - cursor: coordinate-addressed readers and writers over a buffer
//   - transfer: sub-area validation and transfer buffer allocation
//
// and adapters to the surrounding GoGPU ecosystem:
//
//   - device: pushes filled transfers into gpucontext textures and wgpu/hal queues
//   - shaderio: checks WGSL vertex inputs against a layout
//   - texload: decodes image files into texture transfers
//
// # Quick Start
//
//	extent, _ := region.AreaFromSize(256, 256)
//	up, err := transfer.NewTexture(format.RGBA8, extent)
//	if err != nil {
//	    return err
//	}
//	c, err := up.Float4()
//	if err != nil {
//	    return err
//	}
//	for c.IsValid() {
//	    _ = c.Put4f(1, 0, 0, 1)
//	    c.Next()
//	}
//	// up.Data() now holds 256*256*4 bytes of opaque red.
//
// # Coordinates
//
// Following the graphics-standard convention, row 0 of an image is the
// bottom-most row. Cursors accept coordinates in the target area (the area
// of the texture being replaced) and flip rows when computing byte offsets,
// so y = target.Y.Lower addresses the last row of the transfer buffer.
//
// # Errors
//
// All failures are precondition violations reported eagerly. They wrap the
// sentinels declared in this package and are matched with errors.Is.
//
// # Logging
//
// texel is silent by default. Call SetLogger to receive debug diagnostics
// from the sub-packages.
package texel
