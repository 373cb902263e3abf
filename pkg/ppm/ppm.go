// Package ppm encodes a Canvas as a PPM (P3, ASCII) byte stream.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jumballaya/raytracer/pkg/canvas"
)

const maxColumnsPerLine = 4

// Encode writes c to w as P3 PPM: a three-line header ("P3", "<width>
// <height>", "255") followed by the pixel body in row-major order,
// space-separated, wrapped every four pixels so lines don't grow
// unboundedly.
func Encode(w io.Writer, c *canvas.Canvas) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}

	for y := 0; y < c.Height; y++ {
		col := 0
		for x := 0; x < c.Width; x++ {
			r, g, b := c.GetPixel(x, y).Bytes()

			if col > 0 {
				if col%maxColumnsPerLine == 0 {
					if err := bw.WriteByte('\n'); err != nil {
						return err
					}
				} else if _, err := bw.WriteString(" "); err != nil {
					return err
				}
			}

			if _, err := fmt.Fprintf(bw, "%d %d %d", r, g, b); err != nil {
				return err
			}
			col++
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
