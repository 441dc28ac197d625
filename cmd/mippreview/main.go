// mippreview decodes an image, builds its mip pyramid and writes the
// base plus every level as PNGs, for eyeballing filter quality.
package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"

	_ "image/jpeg" // register JPEG format with image.Decode
	_ "image/png"  // register PNG format with image.Decode

	"github.com/softrender/miptex/mipmap"
	"github.com/softrender/miptex/pix"
	"github.com/softrender/miptex/texture"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <input image> <output dir>\n", os.Args[0])
		os.Exit(1)
	}
	input, outDir := os.Args[1], os.Args[2]

	f, err := os.Open(input)
	if err != nil {
		log.Fatalf("Could not open %q: %v", input, err)
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		log.Fatalf("Could not decode %q: %v", input, err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatalf("Could not create %q: %v", outDir, err)
	}

	base := pix.FromImage(decoded)
	tex := texture.NewImage(texture.Trilinear, base,
		mipmap.WithWorkers(runtime.GOMAXPROCS(0)),
		mipmap.WithProgress(func(level, w, h int) {
			fmt.Printf("level %d: %dx%d\n", level, w, h)
		}),
	)

	save(filepath.Join(outDir, "base.png"), tex.Source())
	for i, level := range tex.Levels() {
		save(filepath.Join(outDir, fmt.Sprintf("level_%02d.png", i)), level)
	}
}

func save(path string, img *pix.Image) {
	fmt.Printf("-> creating %s\n", path)
	outFile, err := os.Create(path)
	if err != nil {
		log.Fatalf("Could not create %s: %v", path, err)
	}
	defer outFile.Close()

	if err := png.Encode(outFile, img.ToNRGBA()); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}
}
