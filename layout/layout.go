// Package layout computes the byte layout of strictly packed vertex
// records.
//
// A BufferLayout is built once from an ordered list of named attributes.
// Attributes are laid out back to back with no alignment padding, so the
// stride of a record is the sum of the attribute sizes and the offset of an
// attribute is the sum of the sizes of the attributes declared before it.
//
// Layouts are immutable and safe for concurrent use.
package layout

import (
	"fmt"

	"github.com/gogpu/texel"
)

// Attribute describes one named vertex attribute.
type Attribute struct {
	// Name identifies the attribute within its layout.
	Name string

	// Type is the type of each component.
	Type ScalarType

	// Count is the number of components (1 to 4).
	Count int
}

// SizeBytes returns Count * Type.SizeBytes().
func (a Attribute) SizeBytes() int {
	return a.Count * a.Type.SizeBytes()
}

// String returns the attribute as "name:typexcount".
func (a Attribute) String() string {
	return fmt.Sprintf("%s:%vx%d", a.Name, a.Type, a.Count)
}

// BufferLayout is an ordered set of attributes with derived offsets.
type BufferLayout struct {
	attrs   []Attribute
	offsets []int
	index   map[string]int
	stride  int
}

// New builds a layout from attrs in declaration order. It fails with
// texel.ErrRange for an empty list, an unknown type or a count outside
// 1..4, and with texel.ErrDuplicateAttribute if two attributes share a
// name.
func New(attrs ...Attribute) (*BufferLayout, error) {
	if len(attrs) == 0 {
		return nil, fmt.Errorf("layout: no attributes: %w", texel.ErrRange)
	}

	l := &BufferLayout{
		attrs:   make([]Attribute, len(attrs)),
		offsets: make([]int, len(attrs)),
		index:   make(map[string]int, len(attrs)),
	}
	copy(l.attrs, attrs)

	offset := 0
	for i, a := range l.attrs {
		if !a.Type.IsValid() {
			return nil, fmt.Errorf("layout: attribute %q: unknown type %d: %w", a.Name, a.Type, texel.ErrRange)
		}
		if a.Count < 1 || a.Count > 4 {
			return nil, fmt.Errorf("layout: attribute %q: count %d not in [1, 4]: %w", a.Name, a.Count, texel.ErrRange)
		}
		if _, dup := l.index[a.Name]; dup {
			return nil, fmt.Errorf("layout: attribute %q: %w", a.Name, texel.ErrDuplicateAttribute)
		}
		l.index[a.Name] = i
		l.offsets[i] = offset
		offset += a.SizeBytes()
	}
	l.stride = offset
	return l, nil
}

// Stride returns the size in bytes of one record.
func (l *BufferLayout) Stride() int {
	return l.stride
}

// Len returns the number of attributes.
func (l *BufferLayout) Len() int {
	return len(l.attrs)
}

// Attributes returns the attributes in declaration order.
func (l *BufferLayout) Attributes() []Attribute {
	out := make([]Attribute, len(l.attrs))
	copy(out, l.attrs)
	return out
}

// HasAttribute reports whether the layout declares name.
func (l *BufferLayout) HasAttribute(name string) bool {
	_, ok := l.index[name]
	return ok
}

func (l *BufferLayout) lookup(name string) (int, error) {
	i, ok := l.index[name]
	if !ok {
		return 0, fmt.Errorf("layout: attribute %q: %w", name, texel.ErrUnknownAttribute)
	}
	return i, nil
}

// Attribute returns the attribute called name.
func (l *BufferLayout) Attribute(name string) (Attribute, error) {
	i, err := l.lookup(name)
	if err != nil {
		return Attribute{}, err
	}
	return l.attrs[i], nil
}

// Offset returns the byte offset of name within a record.
func (l *BufferLayout) Offset(name string) (int, error) {
	i, err := l.lookup(name)
	if err != nil {
		return 0, err
	}
	return l.offsets[i], nil
}

// ElementOffset returns the byte offset of component element of name within
// a record. It fails with texel.ErrIndexOutOfRange if element is not below
// the attribute's count.
func (l *BufferLayout) ElementOffset(name string, element int) (int, error) {
	i, err := l.lookup(name)
	if err != nil {
		return 0, err
	}
	a := l.attrs[i]
	if element < 0 || element >= a.Count {
		return 0, fmt.Errorf("layout: attribute %q: element %d of %d: %w", name, element, a.Count, texel.ErrIndexOutOfRange)
	}
	return l.offsets[i] + element*a.Type.SizeBytes(), nil
}

// Location returns the declaration index of name, which is also its
// shader location relative to the first location of the layout.
func (l *BufferLayout) Location(name string) (int, error) {
	return l.lookup(name)
}
