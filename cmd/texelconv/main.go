// Command texelconv converts an image file into a raw texture upload
// buffer of a chosen pixel format.
//
// Usage:
//
//	texelconv -in photo.png -out photo.raw -format RGB565 [-width 256 -height 256]
//	texelconv -list
//
// The output holds the tightly packed texels in native byte order, top row
// first, ready to be handed to a texture upload.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/gogpu/texel"
	"github.com/gogpu/texel/format"
	"github.com/gogpu/texel/texload"
	"github.com/gogpu/texel/transfer"
)

func main() {
	var (
		in      = flag.String("in", "", "input image (PNG, JPEG, BMP, TIFF, WebP)")
		out     = flag.String("out", "", "output file for the raw texel buffer")
		preview = flag.String("preview", "", "optional PNG file showing the converted texels")
		name    = flag.String("format", "RGBA8", "target pixel format (see -list)")
		width   = flag.Int("width", 0, "rescale to this width")
		height  = flag.Int("height", 0, "rescale to this height")
		list    = flag.Bool("list", false, "list pixel formats and exit")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		texel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *list {
		listFormats()
		return
	}
	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, ok := format.Parse(*name)
	if !ok {
		log.Fatalf("Unknown format %q", *name)
	}

	u, err := texload.Load(*in, f, texload.WithSize(*width, *height))
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}

	if err := os.WriteFile(filepath.Clean(*out), u.Data(), 0o644); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	if *preview != "" {
		if err := writePreview(*preview, u); err != nil {
			log.Fatalf("Failed to save preview: %v", err)
		}
	}

	t := u.Target()
	layout := u.DataLayout()
	log.Printf("Wrote %s: %v %dx%d, %d bytes per row, %d bytes\n",
		*out, f, t.Width(), t.Height(), layout.BytesPerRow, len(u.Data()))
	if tf, ok := f.TextureFormat(); ok {
		log.Printf("WebGPU texture format: %v\n", tf)
	}
}

func writePreview(path string, u *transfer.TextureUpdate) error {
	img, err := texload.ToImage(u)
	if err != nil {
		return err
	}
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func listFormats() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FORMAT\tCOMPONENTS\tBYTES\tENCODING\tES2\tES3\tGL3\tWEBGPU")
	for _, f := range format.Values() {
		tf := "-"
		if v, ok := f.TextureFormat(); ok {
			tf = fmt.Sprint(v)
		}
		fmt.Fprintf(w, "%v\t%d\t%d\t%v\t%s\t%s\t%s\t%s\n",
			f, f.ComponentCount(), f.BytesPerPixel(), f.Encoding(),
			mark(format.IsRequired(f, format.ProfileES2)),
			mark(format.IsRequired(f, format.ProfileES3)),
			mark(format.IsRequired(f, format.ProfileGL3)),
			tf)
	}
	_ = w.Flush()
}

func mark(required bool) string {
	if required {
		return "required"
	}
	return "-"
}
