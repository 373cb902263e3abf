// raytracer renders a demo scene to a PPM file, or previews it
// directly in the terminal.
//
// Usage:
//
//	raytracer [options] <output.ppm>
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/jumballaya/raytracer/pkg/camera"
	"github.com/jumballaya/raytracer/pkg/canvas"
	"github.com/jumballaya/raytracer/pkg/light"
	"github.com/jumballaya/raytracer/pkg/material"
	"github.com/jumballaya/raytracer/pkg/math3d"
	"github.com/jumballaya/raytracer/pkg/objfile"
	"github.com/jumballaya/raytracer/pkg/ppm"
	"github.com/jumballaya/raytracer/pkg/render"
	"github.com/jumballaya/raytracer/pkg/shape"
	"github.com/jumballaya/raytracer/pkg/world"
)

var (
	hsize    = flag.Int("width", 400, "Output width in pixels")
	vsize    = flag.Int("height", 200, "Output height in pixels")
	fov      = flag.Float64("fov", math.Pi/3, "Camera field of view across the longer image side, radians")
	parallel = flag.Bool("parallel", true, "Split rows across a worker pool")
	preview  = flag.Bool("preview", false, "Print the render to the terminal instead of writing a file")
	modelArg = flag.String("model", "", "Optional OBJ file to add to the scene, raised one unit above the origin")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "raytracer - CPU Whitted-style ray tracer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: raytracer [options] <output.ppm>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if !*preview && flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	w, cam, err := buildScene()
	if err != nil {
		return err
	}

	var img *canvas.Canvas
	if *parallel {
		img = render.RenderParallel(cam, w)
	} else {
		img = render.Render(cam, w)
	}

	if *preview {
		return render.PrintTerminal(os.Stdout, img)
	}

	f, err := os.Create(flag.Arg(0))
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	return ppm.Encode(f, img)
}

// buildScene assembles the demo world: a floor, a reflective and a
// glass sphere, and an optional imported OBJ model. If -preview is
// set, the viewport is sized to the detected terminal instead of
// -width/-height.
func buildScene() (*world.World, *camera.Camera, error) {
	w := world.New()
	w.AddLight(light.NewPoint(math3d.P3(-10, 10, -10), canvas.White))

	floor := shape.NewPlane().WithMaterial(
		material.Default().
			WithColor(canvas.NewColor(1, 0.9, 0.9)).
			WithSpecular(0),
	)
	w.AddObject(floor)

	middle := shape.NewSphere().
		Translate(-0.5, 1, 0.5).
		WithMaterial(
			material.Default().
				WithColor(canvas.NewColor(0.1, 1, 0.5)).
				WithDiffuse(0.7).
				WithSpecular(0.3).
				WithReflective(0.3),
		)
	w.AddObject(middle)

	right := shape.NewSphere().
		Translate(1.5, 0.5, -0.5).
		Scale(0.5, 0.5, 0.5).
		WithMaterial(
			material.Default().
				WithColor(canvas.NewColor(0.8, 0.1, 0.1)).
				WithDiffuse(0.2).
				WithReflective(0.2).
				WithTransparency(0.9).
				WithRefractiveIndex(material.RefractiveGlass),
		)
	w.AddObject(right)

	if *modelArg != "" {
		model, err := objfile.Load(*modelArg)
		if err != nil {
			return nil, nil, fmt.Errorf("load model: %w", err)
		}
		w.AddObject(model.Translate(0, 1, 0))
	}

	width, height := *hsize, *vsize
	if *preview {
		if tw, th, err := terminalSize(); err == nil {
			width, height = tw, th*2
		}
	}

	cam := camera.New(width, height, *fov)
	cam.ViewTransform(math3d.P3(0, 1.5, -5), math3d.P3(0, 1, 0), math3d.V3(0, 1, 0))

	return w, cam, nil
}

func terminalSize() (int, int, error) {
	term := uv.DefaultTerminal()
	return term.GetSize()
}
