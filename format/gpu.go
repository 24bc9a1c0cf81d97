package format

import "github.com/gogpu/gputypes"

// gpuFormats maps formats onto WebGPU texture formats with an identical
// texel layout. Formats left out have no such counterpart: WebGPU has no
// three-component or 16-bit packed formats, stores RGB10A2 with red in the
// low bits, and gives no byte layout to the 24-bit depth formats.
var gpuFormats = [formatCount]gputypes.TextureFormat{
	Depth16:  gputypes.TextureFormatDepth16Unorm,
	Depth32F: gputypes.TextureFormatDepth32Float,

	R8:   gputypes.TextureFormatR8Unorm,
	R8I:  gputypes.TextureFormatR8Sint,
	R8U:  gputypes.TextureFormatR8Uint,
	R8S:  gputypes.TextureFormatR8Snorm,
	R16:  gputypes.TextureFormatR16Unorm,
	R16F: gputypes.TextureFormatR16Float,
	R16I: gputypes.TextureFormatR16Sint,
	R16U: gputypes.TextureFormatR16Uint,
	R16S: gputypes.TextureFormatR16Snorm,
	R32F: gputypes.TextureFormatR32Float,
	R32I: gputypes.TextureFormatR32Sint,
	R32U: gputypes.TextureFormatR32Uint,

	RG8:   gputypes.TextureFormatRG8Unorm,
	RG8I:  gputypes.TextureFormatRG8Sint,
	RG8U:  gputypes.TextureFormatRG8Uint,
	RG8S:  gputypes.TextureFormatRG8Snorm,
	RG16:  gputypes.TextureFormatRG16Unorm,
	RG16F: gputypes.TextureFormatRG16Float,
	RG16I: gputypes.TextureFormatRG16Sint,
	RG16U: gputypes.TextureFormatRG16Uint,
	RG16S: gputypes.TextureFormatRG16Snorm,
	RG32F: gputypes.TextureFormatRG32Float,
	RG32I: gputypes.TextureFormatRG32Sint,
	RG32U: gputypes.TextureFormatRG32Uint,

	RGBA8:   gputypes.TextureFormatRGBA8Unorm,
	RGBA8I:  gputypes.TextureFormatRGBA8Sint,
	RGBA8U:  gputypes.TextureFormatRGBA8Uint,
	RGBA8S:  gputypes.TextureFormatRGBA8Snorm,
	RGBA16:  gputypes.TextureFormatRGBA16Unorm,
	RGBA16F: gputypes.TextureFormatRGBA16Float,
	RGBA16I: gputypes.TextureFormatRGBA16Sint,
	RGBA16U: gputypes.TextureFormatRGBA16Uint,
	RGBA16S: gputypes.TextureFormatRGBA16Snorm,
	RGBA32F: gputypes.TextureFormatRGBA32Float,
	RGBA32I: gputypes.TextureFormatRGBA32Sint,
	RGBA32U: gputypes.TextureFormatRGBA32Uint,
}

// TextureFormat returns the WebGPU texture format with the same texel
// layout as f. The boolean is false when WebGPU has no such format.
func (f Format) TextureFormat() (gputypes.TextureFormat, bool) {
	if !f.IsValid() {
		return gputypes.TextureFormatUndefined, false
	}
	tf := gpuFormats[f]
	return tf, tf != gputypes.TextureFormatUndefined
}

// TextureAspect returns the aspect to address when uploading texels of f.
func (f Format) TextureAspect() gputypes.TextureAspect {
	switch {
	case f.DepthBits() > 0 && f.StencilBits() == 0:
		return gputypes.TextureAspectDepthOnly
	default:
		return gputypes.TextureAspectAll
	}
}

// FromTextureFormat returns the format with the same texel layout as a
// WebGPU texture format.
func FromTextureFormat(tf gputypes.TextureFormat) (Format, bool) {
	if tf == gputypes.TextureFormatUndefined {
		return 0, false
	}
	for f := range formatCount {
		if gpuFormats[f] == tf {
			return f, true
		}
	}
	return 0, false
}
