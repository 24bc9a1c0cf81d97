package layout

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/texel"
)

// vertexFormats maps a scalar type and component count (index count-1)
// onto a WebGPU vertex format. WebGPU has no 1- or 3-component 8/16-bit
// formats, so those entries are undefined.
var vertexFormats = [scalarCount][4]gputypes.VertexFormat{
	Int8:    {0, gputypes.VertexFormatSint8x2, 0, gputypes.VertexFormatSint8x4},
	Int16:   {0, gputypes.VertexFormatSint16x2, 0, gputypes.VertexFormatSint16x4},
	Int32:   {gputypes.VertexFormatSint32, gputypes.VertexFormatSint32x2, gputypes.VertexFormatSint32x3, gputypes.VertexFormatSint32x4},
	Uint8:   {0, gputypes.VertexFormatUint8x2, 0, gputypes.VertexFormatUint8x4},
	Uint16:  {0, gputypes.VertexFormatUint16x2, 0, gputypes.VertexFormatUint16x4},
	Uint32:  {gputypes.VertexFormatUint32, gputypes.VertexFormatUint32x2, gputypes.VertexFormatUint32x3, gputypes.VertexFormatUint32x4},
	Float16: {0, gputypes.VertexFormatFloat16x2, 0, gputypes.VertexFormatFloat16x4},
	Float32: {gputypes.VertexFormatFloat32, gputypes.VertexFormatFloat32x2, gputypes.VertexFormatFloat32x3, gputypes.VertexFormatFloat32x4},
}

// VertexFormat returns the WebGPU vertex format for count components of
// type t. The boolean is false when WebGPU has no such format.
func (t ScalarType) VertexFormat(count int) (gputypes.VertexFormat, bool) {
	if !t.IsValid() || count < 1 || count > 4 {
		return gputypes.VertexFormatUndefined, false
	}
	vf := vertexFormats[t][count-1]
	return vf, vf != gputypes.VertexFormatUndefined
}

// VertexBufferLayout describes l as a WebGPU vertex buffer. Attributes are
// assigned consecutive shader locations starting at firstLocation. It fails
// with texel.ErrTypeError if an attribute has no WebGPU vertex format.
func (l *BufferLayout) VertexBufferLayout(firstLocation uint32) (gputypes.VertexBufferLayout, error) {
	attrs := make([]gputypes.VertexAttribute, 0, len(l.attrs))
	for i, a := range l.attrs {
		vf, ok := a.Type.VertexFormat(a.Count)
		if !ok {
			return gputypes.VertexBufferLayout{}, fmt.Errorf("layout: attribute %v has no vertex format: %w", a, texel.ErrTypeError)
		}
		attrs = append(attrs, gputypes.VertexAttribute{
			Format:         vf,
			Offset:         uint64(l.offsets[i]),
			ShaderLocation: firstLocation + uint32(i),
		})
	}
	return gputypes.VertexBufferLayout{
		ArrayStride: uint64(l.stride),
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  attrs,
	}, nil
}
