package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"neural-bg/internal/backdrop"
	"neural-bg/internal/core"
	"neural-bg/internal/headless"
	"neural-bg/internal/render"

	xdraw "golang.org/x/image/draw"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func (l kvList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[parts[0]] = parts[1]
	}
	return m
}

func main() {
	width := flag.Int("width", 1280, "surface width")
	height := flag.Int("height", 800, "surface height")
	frames := flag.Int("frames", 240, "number of frames to simulate")
	every := flag.Int("every", 60, "write one PNG every N frames (0 = last frame only)")
	fps := flag.Int("fps", 60, "simulated frames per second")
	out := flag.String("out", "snapshots", "output directory")
	still := flag.Bool("still", false, "keep the pointer outside the surface")
	transparent := flag.Bool("transparent", false, "skip the page background")
	cfg := backdrop.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	cfg = cfg.With(overrides.Map())
	if *width <= 0 || *height <= 0 {
		log.Fatalf("invalid surface size %dx%d", *width, *height)
	}
	if *fps <= 0 {
		log.Fatalf("invalid fps %d", *fps)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	run := headless.Run{
		Frames:   *frames,
		Every:    *every,
		Interval: time.Second / time.Duration(*fps),
		Start:    time.Unix(0, 0),
	}
	if !*still {
		run.Path = headless.Orbit(core.Size{W: *width, H: *height}, *frames)
	}

	host := headless.NewHost(*width, *height)
	written := 0
	err := headless.Render(host, cfg, run, func(i int, img *image.RGBA) error {
		name := filepath.Join(*out, fmt.Sprintf("frame_%04d.png", i))
		var frame image.Image = img
		if !*transparent {
			frame = flatten(img)
		}
		if err := writePNG(name, frame); err != nil {
			return err
		}
		written++
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d frame(s) to %s (seed %d)", written, *out, cfg.Seed)
}

// flatten composites the transparent surface over the page color.
func flatten(img *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(img.Bounds())
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(render.Background), image.Point{}, xdraw.Src)
	xdraw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, xdraw.Over)
	return dst
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return f.Close()
}
