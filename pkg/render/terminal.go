package render

import (
	"fmt"
	"io"

	"github.com/jumballaya/raytracer/pkg/canvas"
)

// PrintTerminal writes c to w as a block of ANSI half-block
// characters: each terminal cell packs two canvas rows using "▀"
// with the top row as foreground and the bottom row as background,
// doubling vertical resolution relative to one-cell-per-pixel output.
func PrintTerminal(w io.Writer, c *canvas.Canvas) error {
	for y := 0; y < c.Height; y += 2 {
		for x := 0; x < c.Width; x++ {
			top := c.GetPixel(x, y)
			bot := canvas.Black
			if y+1 < c.Height {
				bot = c.GetPixel(x, y+1)
			}

			tr, tg, tb := top.Bytes()
			br, bg, bb := bot.Bytes()

			if _, err := fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "\x1b[0m\n"); err != nil {
			return err
		}
	}
	return nil
}
