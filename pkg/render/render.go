// Package render drives a Camera across a World, producing a Canvas.
// Rendering is embarrassingly parallel — every pixel's color is
// independent of every other — so the parallel path splits work by
// row across a fixed worker pool rather than synchronizing per pixel.
package render

import (
	"runtime"
	"sync"

	"github.com/jumballaya/raytracer/pkg/camera"
	"github.com/jumballaya/raytracer/pkg/canvas"
	"github.com/jumballaya/raytracer/pkg/world"
)

// Render drives cam across w single-threaded, row-major (y outer, x
// inner), using world.DefaultRecursionDepth for reflection/refraction.
func Render(cam *camera.Camera, w *world.World) *canvas.Canvas {
	return RenderDepth(cam, w, world.DefaultRecursionDepth)
}

// RenderDepth is Render with an explicit recursion depth.
func RenderDepth(cam *camera.Camera, w *world.World, depth int) *canvas.Canvas {
	img := canvas.NewCanvas(cam.HSize, cam.VSize)
	for y := 0; y < cam.VSize; y++ {
		renderRow(img, cam, w, y, depth)
	}
	return img
}

func renderRow(img *canvas.Canvas, cam *camera.Camera, w *world.World, y, depth int) {
	for x := 0; x < cam.HSize; x++ {
		ray := cam.RayForPixel(x, y)
		img.SetPixel(x, y, w.ColorAt(ray, depth))
	}
}

// RenderParallel is Render, but distributes rows across a worker pool
// sized to the host's CPU count. Row order of completion is
// unspecified; final pixel placement is not, since each worker writes
// only the rows it claims.
func RenderParallel(cam *camera.Camera, w *world.World) *canvas.Canvas {
	return RenderParallelDepth(cam, w, world.DefaultRecursionDepth, runtime.GOMAXPROCS(0))
}

// RenderParallelDepth is RenderParallel with an explicit recursion
// depth and worker count.
func RenderParallelDepth(cam *camera.Camera, w *world.World, depth, workers int) *canvas.Canvas {
	if workers <= 0 {
		workers = 1
	}

	img := canvas.NewCanvas(cam.HSize, cam.VSize)
	rows := make(chan int, cam.VSize)
	for y := 0; y < cam.VSize; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				renderRow(img, cam, w, y, depth)
			}
		}()
	}
	wg.Wait()

	return img
}
