// Package shaderio reads the vertex inputs of WGSL shaders and checks them
// against attribute layouts.
//
// Shaders are parsed and lowered with naga. The @location inputs of a
// vertex entry point are collected from its arguments, with struct
// arguments flattened into their members. CheckLayout then verifies that a
// BufferLayout bound at a given first location feeds every input with the
// right scalar kind and component count.
package shaderio

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"

	"github.com/gogpu/texel"
	"github.com/gogpu/texel/layout"
)

// ErrNoEntryPoint is returned when a shader has no matching vertex entry
// point.
var ErrNoEntryPoint = errors.New("shaderio: no vertex entry point")

// Kind is the scalar kind of a shader input.
type Kind uint8

const (
	// KindFloat is a floating-point input (f32, f16).
	KindFloat Kind = iota
	// KindSint is a signed integer input (i32).
	KindSint
	// KindUint is an unsigned integer input (u32).
	KindUint
)

// String returns the WGSL spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "f32"
	case KindSint:
		return "i32"
	case KindUint:
		return "u32"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Input is one @location input of a vertex entry point.
type Input struct {
	Name     string
	Location uint32
	Kind     Kind
	Count    int
}

func (in Input) String() string {
	if in.Count == 1 {
		return fmt.Sprintf("@location(%d) %s: %v", in.Location, in.Name, in.Kind)
	}
	return fmt.Sprintf("@location(%d) %s: vec%d<%v>", in.Location, in.Name, in.Count, in.Kind)
}

// VertexInputs returns the @location inputs of the vertex entry point named
// entry, ordered by location. An empty entry selects the first vertex entry
// point of the shader.
func VertexInputs(wgsl, entry string) ([]Input, error) {
	ast, err := naga.Parse(wgsl)
	if err != nil {
		return nil, fmt.Errorf("shaderio: %w", err)
	}
	mod, err := naga.LowerWithSource(ast, wgsl)
	if err != nil {
		return nil, fmt.Errorf("shaderio: lower: %w", err)
	}

	ep, err := findEntryPoint(mod, entry)
	if err != nil {
		return nil, err
	}

	var inputs []Input
	for _, arg := range ep.Function.Arguments {
		if arg.Binding == nil {
			st, ok := mod.Types[arg.Type].Inner.(ir.StructType)
			if !ok {
				continue
			}
			for _, m := range st.Members {
				in, ok, err := input(mod, m.Name, m.Type, m.Binding)
				if err != nil {
					return nil, err
				}
				if ok {
					inputs = append(inputs, in)
				}
			}
			continue
		}
		in, ok, err := input(mod, arg.Name, arg.Type, arg.Binding)
		if err != nil {
			return nil, err
		}
		if ok {
			inputs = append(inputs, in)
		}
	}

	slices.SortFunc(inputs, func(a, b Input) int {
		return int(a.Location) - int(b.Location)
	})

	texel.Logger().Debug("shaderio: vertex inputs", "entry", ep.Name, "count", len(inputs))
	return inputs, nil
}

func findEntryPoint(mod *ir.Module, name string) (*ir.EntryPoint, error) {
	for i := range mod.EntryPoints {
		ep := &mod.EntryPoints[i]
		if ep.Stage != ir.StageVertex {
			continue
		}
		if name == "" || ep.Name == name {
			return ep, nil
		}
	}
	if name == "" {
		return nil, ErrNoEntryPoint
	}
	return nil, fmt.Errorf("%w named %q", ErrNoEntryPoint, name)
}

// input converts a located argument or struct member. Built-in bindings
// report false.
func input(mod *ir.Module, name string, th ir.TypeHandle, b *ir.Binding) (Input, bool, error) {
	if b == nil {
		return Input{}, false, nil
	}
	loc, ok := (*b).(ir.LocationBinding)
	if !ok {
		return Input{}, false, nil
	}

	in := Input{Name: name, Location: loc.Location}
	var scalar ir.ScalarType
	switch t := mod.Types[th].Inner.(type) {
	case ir.ScalarType:
		scalar, in.Count = t, 1
	case ir.VectorType:
		scalar, in.Count = t.Scalar, int(t.Size)
	default:
		return Input{}, false, fmt.Errorf("shaderio: input %q has type %T: %w", name, t, texel.ErrTypeError)
	}
	switch scalar.Kind {
	case ir.ScalarFloat:
		in.Kind = KindFloat
	case ir.ScalarSint:
		in.Kind = KindSint
	case ir.ScalarUint:
		in.Kind = KindUint
	default:
		return Input{}, false, fmt.Errorf("shaderio: input %q has scalar kind %d: %w", name, scalar.Kind, texel.ErrTypeError)
	}
	return in, true, nil
}

func kindOf(t layout.ScalarType) Kind {
	switch {
	case t.IsFloat():
		return KindFloat
	case t.IsSigned():
		return KindSint
	default:
		return KindUint
	}
}

// CheckLayout verifies that l, bound with its first attribute at shader
// location firstLocation, feeds every input. It fails with
// texel.ErrUnknownAttribute if an input has no attribute at its location,
// texel.ErrTypeError if the scalar kinds differ, and
// texel.ErrComponentCountMismatch if the component counts differ.
func CheckLayout(inputs []Input, l *layout.BufferLayout, firstLocation uint32) error {
	attrs := l.Attributes()
	for _, in := range inputs {
		if in.Location < firstLocation || int(in.Location-firstLocation) >= len(attrs) {
			return fmt.Errorf("shaderio: no attribute for %v: %w", in, texel.ErrUnknownAttribute)
		}
		a := attrs[in.Location-firstLocation]
		if k := kindOf(a.Type); k != in.Kind {
			return fmt.Errorf("shaderio: attribute %v feeds %v: %w", a, in, texel.ErrTypeError)
		}
		if a.Count != in.Count {
			return fmt.Errorf("shaderio: attribute %v feeds %v: %w", a, in, texel.ErrComponentCountMismatch)
		}
	}
	return nil
}
