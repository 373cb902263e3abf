// Package camera turns a viewport and view transform into per-pixel
// world-space rays, the projection half of the render loop.
package camera

import (
	"math"

	"github.com/jumballaya/raytracer/pkg/math3d"
)

// Camera projects pixels on an hsize x vsize viewport into world-space
// rays, given a field of view and a transform (world ->
// camera-local). halfWidth, halfHeight, and pixelSize are derived from
// hsize/vsize/fov at construction and cached since every pixel needs
// them.
type Camera struct {
	HSize, VSize int
	FOV          float64

	transform    math3d.Matrix4
	invTransform math3d.Matrix4

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// New creates a camera with the given pixel dimensions and field of
// view (radians) across the longer of the two dimensions, transform
// defaulting to identity.
func New(hsize, vsize int, fov float64) *Camera {
	c := &Camera{HSize: hsize, VSize: vsize, FOV: fov}
	c.computeViewport()
	c.SetTransform(math3d.Identity4())
	return c
}

func (c *Camera) computeViewport() {
	halfView := math.Tan(c.FOV / 2)
	aspect := float64(c.HSize) / float64(c.VSize)

	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}

	c.pixelSize = (c.halfWidth * 2) / float64(c.HSize)
}

// SetTransform installs m as the camera's transform and recomputes
// its cached inverse.
func (c *Camera) SetTransform(m math3d.Matrix4) {
	c.transform = m
	c.invTransform = m.Inverse()
}

// Transform returns the camera's transform.
func (c *Camera) Transform() math3d.Matrix4 { return c.transform }

// ViewTransform computes the world-to-camera transform for a camera
// at from, looking toward to, with up as the up direction, and
// installs it.
func (c *Camera) ViewTransform(from, to math3d.Point, up math3d.Vector) {
	c.SetTransform(math3d.View(from, to, up))
}

// RayForPixel returns the world-space ray passing through pixel (x, y)
// on the camera's viewport.
func (c *Camera) RayForPixel(x, y int) math3d.Ray {
	xOffset := (float64(x) + 0.5) * c.pixelSize
	yOffset := (float64(y) + 0.5) * c.pixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.invTransform.MulPoint(math3d.P3(worldX, worldY, -1))
	origin := c.invTransform.MulPoint(math3d.Origin())
	direction := pixel.Sub(origin).Normalize()

	return math3d.NewRay(origin, direction)
}
