package format

import (
	"fmt"

	"github.com/gogpu/texel"
)

// Profile identifies a graphics API variant that determines which formats
// are guaranteed to be available and renderable.
type Profile uint8

const (
	// ProfileES2 is OpenGL ES 2.x.
	ProfileES2 Profile = iota

	// ProfileES3 is OpenGL ES 3.x.
	ProfileES3

	// ProfileGL3 is desktop OpenGL 3.x core and later.
	ProfileGL3

	// ProfileGL3ES3 is the intersection of ProfileGL3 and ProfileES3,
	// for code that must run on both.
	ProfileGL3ES3

	// ProfileGL21 is legacy desktop OpenGL 2.1.
	ProfileGL21

	profileCount
)

var profileNames = [profileCount]string{
	ProfileES2:    "ES2",
	ProfileES3:    "ES3",
	ProfileGL3:    "GL3",
	ProfileGL3ES3: "GL3ES3",
	ProfileGL21:   "GL21",
}

// String returns the name of the profile.
func (p Profile) String() string {
	if p >= profileCount {
		return "Unknown"
	}
	return profileNames[p]
}

// API distinguishes embedded from desktop contexts.
type API uint8

const (
	// APIGLES is OpenGL ES.
	APIGLES API = iota

	// APIGL is desktop OpenGL.
	APIGL
)

// ProfileFor returns the profile of a context of the given API and major
// version.
func ProfileFor(api API, major int) Profile {
	if api == APIGLES {
		if major >= 3 {
			return ProfileES3
		}
		return ProfileES2
	}
	if major >= 3 {
		return ProfileGL3
	}
	return ProfileGL21
}

// ExtColorBufferFloat makes the ES3 floating-point formats
// color-renderable when visible.
const ExtColorBufferFloat = "GL_EXT_color_buffer_float"

// Extensions reports which API extensions are visible to the caller.
type Extensions interface {
	ExtensionIsVisible(name string) bool
}

// ExtensionSet is a map-backed Extensions.
type ExtensionSet map[string]struct{}

// NewExtensionSet returns a set containing the named extensions.
func NewExtensionSet(names ...string) ExtensionSet {
	s := make(ExtensionSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// ExtensionIsVisible reports whether name is in the set.
func (s ExtensionSet) ExtensionIsVisible(name string) bool {
	_, ok := s[name]
	return ok
}

type colorSupport uint8

const (
	colorNo colorSupport = iota
	colorYes
	colorWithFloatExt
)

type profileMask uint8

const (
	reqES2 profileMask = 1 << iota
	reqES3
	reqGL3
	reqGL21
)

// capability holds the renderability and required-set membership of a
// format. The values are fixed by the API specifications.
type capability struct {
	es2, es3, gl3 colorSupport
	depth         bool
	stencil       bool
	required      profileMask
}

const (
	no  = colorNo
	yes = colorYes
	ext = colorWithFloatExt

	core = reqES3 | reqGL3
)

var capabilityTable = [formatCount]capability{
	Depth16:         {depth: true, required: core},
	Depth24:         {depth: true, required: core},
	Depth24Stencil8: {depth: true, stencil: true, required: core},
	Depth32F:        {depth: true, required: core},

	R8:   {es3: yes, gl3: yes, required: core},
	R8I:  {es3: yes, gl3: yes, required: core},
	R8U:  {es3: yes, gl3: yes, required: core},
	R8S:  {required: core},
	R16:  {gl3: yes, required: reqGL3},
	R16F: {es3: ext, gl3: yes, required: core},
	R16I: {es3: yes, gl3: yes, required: core},
	R16U: {es3: yes, gl3: yes, required: core},
	R16S: {required: reqGL3},
	R32F: {es3: ext, gl3: yes, required: core},
	R32I: {es3: yes, gl3: yes, required: core},
	R32U: {es3: yes, gl3: yes, required: core},

	RG8:   {es3: yes, gl3: yes, required: core},
	RG8I:  {es3: yes, gl3: yes, required: core},
	RG8U:  {es3: yes, gl3: yes, required: core},
	RG8S:  {required: core},
	RG16:  {gl3: yes, required: reqGL3},
	RG16F: {es3: ext, gl3: yes, required: core},
	RG16I: {es3: yes, gl3: yes, required: core},
	RG16U: {es3: yes, gl3: yes, required: core},
	RG16S: {required: reqGL3},
	RG32F: {es3: ext, gl3: yes, required: core},
	RG32I: {es3: yes, gl3: yes, required: core},
	RG32U: {es3: yes, gl3: yes, required: core},

	RGB8:   {es2: yes, es3: yes, gl3: yes, required: core | reqGL21},
	RGB8I:  {required: core},
	RGB8U:  {required: core},
	RGB8S:  {required: core},
	RGB16:  {required: reqGL3},
	RGB16F: {required: core},
	RGB16I: {required: core},
	RGB16U: {required: core},
	RGB16S: {required: reqGL3},
	RGB32F: {required: core},
	RGB32I: {required: core},
	RGB32U: {required: core},
	RGB565: {es2: yes, es3: yes, required: reqES2 | reqES3},

	RGBA8:       {es2: yes, es3: yes, gl3: yes, required: core | reqGL21},
	RGBA8I:      {es3: yes, gl3: yes, required: core},
	RGBA8U:      {es3: yes, gl3: yes, required: core},
	RGBA8S:      {required: core},
	RGBA16:      {gl3: yes, required: reqGL3},
	RGBA16F:     {es3: ext, gl3: yes, required: core},
	RGBA16I:     {es3: yes, gl3: yes, required: core},
	RGBA16U:     {es3: yes, gl3: yes, required: core},
	RGBA16S:     {required: reqGL3},
	RGBA32F:     {es3: ext, gl3: yes, required: core},
	RGBA32I:     {es3: yes, gl3: yes, required: core},
	RGBA32U:     {es3: yes, gl3: yes, required: core},
	RGBA4444:    {es2: yes, es3: yes, required: reqES2 | reqES3},
	RGBA5551:    {es2: yes, es3: yes, required: reqES2 | reqES3},
	RGBA1010102: {es3: yes, gl3: yes, required: reqGL3},
}

func resolve(s colorSupport, exts Extensions) bool {
	switch s {
	case colorYes:
		return true
	case colorWithFloatExt:
		return exts != nil && exts.ExtensionIsVisible(ExtColorBufferFloat)
	default:
		return false
	}
}

// IsColorRenderable reports whether f can be a color attachment under the
// given profile. exts may be nil when no extensions are visible.
func IsColorRenderable(f Format, p Profile, exts Extensions) bool {
	if !f.IsValid() {
		return false
	}
	c := capabilityTable[f]
	switch p {
	case ProfileES2:
		return resolve(c.es2, exts)
	case ProfileES3:
		return resolve(c.es3, exts)
	case ProfileGL3, ProfileGL21:
		return resolve(c.gl3, exts)
	case ProfileGL3ES3:
		return resolve(c.gl3, exts) && resolve(c.es3, exts)
	default:
		return false
	}
}

// IsDepthRenderable reports whether f can be a depth attachment.
func IsDepthRenderable(f Format) bool {
	return f.IsValid() && capabilityTable[f].depth
}

// IsStencilRenderable reports whether f can be a stencil attachment.
func IsStencilRenderable(f Format) bool {
	return f.IsValid() && capabilityTable[f].stencil
}

func (p Profile) mask() profileMask {
	switch p {
	case ProfileES2:
		return reqES2
	case ProfileES3:
		return reqES3
	case ProfileGL3:
		return reqGL3
	case ProfileGL3ES3:
		return reqES3 | reqGL3
	case ProfileGL21:
		return reqGL21
	default:
		return 0
	}
}

// IsRequired reports whether every implementation of p must support f.
func IsRequired(f Format, p Profile) bool {
	m := p.mask()
	return f.IsValid() && m != 0 && capabilityTable[f].required&m == m
}

// RequiredFormats returns the formats that every implementation of p must
// support, in declaration order.
func RequiredFormats(p Profile) []Format {
	var out []Format
	for f := range formatCount {
		if IsRequired(f, p) {
			out = append(out, f)
		}
	}
	return out
}

// CheckColorRenderable returns an error wrapping texel.ErrTypeError if f is
// not color-renderable under p.
func CheckColorRenderable(f Format, p Profile, exts Extensions) error {
	if !IsColorRenderable(f, p, exts) {
		return fmt.Errorf("format: %v is not color-renderable on %v: %w", f, p, texel.ErrTypeError)
	}
	return nil
}

// CheckDepthRenderable returns an error wrapping texel.ErrTypeError if f is
// not depth-renderable.
func CheckDepthRenderable(f Format) error {
	if !IsDepthRenderable(f) {
		return fmt.Errorf("format: %v is not depth-renderable: %w", f, texel.ErrTypeError)
	}
	return nil
}

// CheckDepthStencilRenderable returns an error wrapping texel.ErrTypeError
// unless f is both depth- and stencil-renderable.
func CheckDepthStencilRenderable(f Format) error {
	if !IsDepthRenderable(f) || !IsStencilRenderable(f) {
		return fmt.Errorf("format: %v is not depth-stencil-renderable: %w", f, texel.ErrTypeError)
	}
	return nil
}
