package format

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/texel"
)

func TestColorAndDepthExclusive(t *testing.T) {
	exts := NewExtensionSet(ExtColorBufferFloat)
	for _, f := range Values() {
		if !IsDepthRenderable(f) {
			continue
		}
		for p := range profileCount {
			if IsColorRenderable(f, p, exts) {
				t.Errorf("%v is both color- and depth-renderable on %v", f, p)
			}
		}
	}
}

func TestDepthStencilRenderable(t *testing.T) {
	var depth, stencil []Format
	for _, f := range Values() {
		if IsDepthRenderable(f) {
			depth = append(depth, f)
		}
		if IsStencilRenderable(f) {
			stencil = append(stencil, f)
		}
	}
	if diff := cmp.Diff([]Format{Depth16, Depth24, Depth24Stencil8, Depth32F}, depth); diff != "" {
		t.Errorf("depth-renderable mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Format{Depth24Stencil8}, stencil); diff != "" {
		t.Errorf("stencil-renderable mismatch (-want +got):\n%s", diff)
	}
}

func TestColorRenderableES2(t *testing.T) {
	var got []Format
	for _, f := range Values() {
		if IsColorRenderable(f, ProfileES2, nil) {
			got = append(got, f)
		}
	}
	want := []Format{RGB8, RGB565, RGBA8, RGBA4444, RGBA5551}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ES2 color-renderable mismatch (-want +got):\n%s", diff)
	}
}

func TestColorRenderableES3Float(t *testing.T) {
	floats := []Format{R16F, R32F, RG16F, RG32F, RGBA16F, RGBA32F}
	for _, f := range floats {
		if IsColorRenderable(f, ProfileES3, nil) {
			t.Errorf("%v color-renderable on ES3 without extensions", f)
		}
		if IsColorRenderable(f, ProfileES3, NewExtensionSet("GL_OES_texture_float")) {
			t.Errorf("%v color-renderable on ES3 with an unrelated extension", f)
		}
		if !IsColorRenderable(f, ProfileES3, NewExtensionSet(ExtColorBufferFloat)) {
			t.Errorf("%v not color-renderable on ES3 with %s", f, ExtColorBufferFloat)
		}
		if !IsColorRenderable(f, ProfileGL3, nil) {
			t.Errorf("%v not color-renderable on GL3", f)
		}
	}
	for _, f := range []Format{RGB16F, RGB32F} {
		if IsColorRenderable(f, ProfileES3, NewExtensionSet(ExtColorBufferFloat)) {
			t.Errorf("%v color-renderable on ES3", f)
		}
	}
}

func TestColorRenderableSamples(t *testing.T) {
	tests := []struct {
		format Format
		es3    bool
		gl3    bool
	}{
		{R8, true, true},
		{R16, false, true},
		{RG16, false, true},
		{RGBA16, false, true},
		{RGB8, true, true},
		{RGB8I, false, false},
		{RGB16, false, false},
		{RGB565, true, false},
		{RGBA4444, true, false},
		{RGBA1010102, true, true},
		{RGBA8S, false, false},
		{RGBA32U, true, true},
		{Depth16, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := IsColorRenderable(tt.format, ProfileES3, nil); got != tt.es3 {
				t.Errorf("ES3 = %v, want %v", got, tt.es3)
			}
			if got := IsColorRenderable(tt.format, ProfileGL3, nil); got != tt.gl3 {
				t.Errorf("GL3 = %v, want %v", got, tt.gl3)
			}
			both := tt.es3 && tt.gl3
			if got := IsColorRenderable(tt.format, ProfileGL3ES3, nil); got != both {
				t.Errorf("GL3ES3 = %v, want %v", got, both)
			}
			if got := IsColorRenderable(tt.format, ProfileGL21, nil); got != tt.gl3 {
				t.Errorf("GL21 = %v, want %v", got, tt.gl3)
			}
		})
	}
}

func TestRequiredFormats(t *testing.T) {
	except := func(excluded ...Format) []Format {
		skip := make(map[Format]bool)
		for _, f := range excluded {
			skip[f] = true
		}
		var out []Format
		for _, f := range Values() {
			if !skip[f] {
				out = append(out, f)
			}
		}
		return out
	}

	tests := []struct {
		profile Profile
		want    []Format
	}{
		{ProfileES2, []Format{RGB565, RGBA4444, RGBA5551}},
		{ProfileGL3, except(RGB565, RGBA4444, RGBA5551)},
		{ProfileES3, except(R16, R16S, RG16, RG16S, RGB16, RGB16S, RGBA16, RGBA16S, RGBA1010102)},
		{ProfileGL3ES3, except(R16, R16S, RG16, RG16S, RGB16, RGB16S, RGBA16, RGBA16S, RGBA1010102,
			RGB565, RGBA4444, RGBA5551)},
		{ProfileGL21, []Format{RGB8, RGBA8}},
	}
	for _, tt := range tests {
		t.Run(tt.profile.String(), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, RequiredFormats(tt.profile)); diff != "" {
				t.Errorf("RequiredFormats mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRequiredIntersection(t *testing.T) {
	for _, f := range Values() {
		want := IsRequired(f, ProfileGL3) && IsRequired(f, ProfileES3)
		if got := IsRequired(f, ProfileGL3ES3); got != want {
			t.Errorf("%v: GL3ES3 required = %v, want %v", f, got, want)
		}
	}
}

func TestProfileFor(t *testing.T) {
	tests := []struct {
		api   API
		major int
		want  Profile
	}{
		{APIGLES, 2, ProfileES2},
		{APIGLES, 3, ProfileES3},
		{APIGL, 2, ProfileGL21},
		{APIGL, 3, ProfileGL3},
		{APIGL, 4, ProfileGL3},
	}
	for _, tt := range tests {
		if got := ProfileFor(tt.api, tt.major); got != tt.want {
			t.Errorf("ProfileFor(%d, %d) = %v, want %v", tt.api, tt.major, got, tt.want)
		}
	}
}

func TestChecks(t *testing.T) {
	if err := CheckColorRenderable(RGBA8, ProfileES2, nil); err != nil {
		t.Errorf("CheckColorRenderable(RGBA8, ES2) = %v", err)
	}
	if err := CheckColorRenderable(RGB32F, ProfileGL3, nil); !errors.Is(err, texel.ErrTypeError) {
		t.Errorf("CheckColorRenderable(RGB32F, GL3) = %v, want ErrTypeError", err)
	}
	if err := CheckDepthRenderable(Depth24); err != nil {
		t.Errorf("CheckDepthRenderable(Depth24) = %v", err)
	}
	if err := CheckDepthRenderable(R32F); !errors.Is(err, texel.ErrTypeError) {
		t.Errorf("CheckDepthRenderable(R32F) = %v, want ErrTypeError", err)
	}
	if err := CheckDepthStencilRenderable(Depth24Stencil8); err != nil {
		t.Errorf("CheckDepthStencilRenderable(Depth24Stencil8) = %v", err)
	}
	if err := CheckDepthStencilRenderable(Depth32F); !errors.Is(err, texel.ErrTypeError) {
		t.Errorf("CheckDepthStencilRenderable(Depth32F) = %v, want ErrTypeError", err)
	}
}
