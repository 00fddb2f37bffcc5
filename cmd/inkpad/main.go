// Command inkpad is an interactive signature capture demo. It turns
// terminal mouse drags into timestamped samples, feeds them through an
// ink.Pad onto a raster.Surface, and previews the surface with half-block
// cells (two pixels per cell).
//
// Keys: c clears the pad, s saves the surface as PNG, q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gopad/ink"
	"github.com/gopad/ink/raster"
)

func main() {
	out := flag.String("out", "signature.png", "output PNG path")
	maxWidth := flag.Float64("max-width", 3.5, "maximum stroke width in pixels")
	verbose := flag.Bool("v", false, "enable debug logging to stderr")
	flag.Parse()

	if *verbose {
		ink.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(*out, *maxWidth); err != nil {
		fmt.Fprintln(os.Stderr, "inkpad:", err)
		os.Exit(1)
	}
}

func run(out string, maxWidth float64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	cols, rows := screen.Size()
	// One cell previews two vertically stacked pixels.
	surface := raster.NewSurface(cols, rows*2, raster.WithPen(raster.Black))

	pad, err := ink.NewPad(surface,
		ink.WithMaxWidth(maxWidth),
		ink.WithBackground(color.White),
	)
	if err != nil {
		return err
	}
	pad.Clear()

	start := time.Now()
	drawing := false
	status := "drag to sign | c clear | s save | q quit"

	render(screen, surface, status)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			render(screen, surface, status)

		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC,
				ev.Rune() == 'q':
				return nil
			case ev.Rune() == 'c':
				pad.Clear()
				status = "cleared"
			case ev.Rune() == 's':
				if pad.IsEmpty() {
					status = "nothing to save"
				} else if err := surface.SavePNG(out); err != nil {
					status = "save failed: " + err.Error()
				} else {
					status = "saved " + out
				}
			}
			render(screen, surface, status)

		case *tcell.EventMouse:
			x, y := ev.Position()
			sample := ink.NewSample(float64(x), float64(y*2), time.Since(start).Milliseconds())

			pressed := ev.Buttons()&tcell.Button1 != 0
			switch {
			case pressed && !drawing:
				drawing = true
				pad.Begin(sample)
			case pressed && drawing:
				pad.Move(sample)
			case !pressed && drawing:
				drawing = false
				pad.End()
			}
			render(screen, surface, status)
		}
	}
}

// render previews the surface using upper-half-block runes: the foreground
// color carries the even row, the background color the odd row.
func render(screen tcell.Screen, surface *raster.Surface, status string) {
	cols, rows := screen.Size()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := cellColor(surface, cx, cy*2)
			bottom := cellColor(surface, cx, cy*2+1)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(cx, cy, '▀', nil, style)
		}
	}

	statusStyle := tcell.StyleDefault.
		Foreground(tcell.ColorBlack).
		Background(tcell.ColorSilver)
	for i, r := range status {
		if i >= cols {
			break
		}
		screen.SetContent(i, rows-1, r, nil, statusStyle)
	}
	screen.Show()
}

// cellColor maps one surface pixel to a terminal color, compositing
// transparency over white so an uncleared surface still previews sensibly.
func cellColor(surface *raster.Surface, x, y int) tcell.Color {
	c := surface.GetPixel(x, y)
	r := c.R*c.A + (1 - c.A)
	g := c.G*c.A + (1 - c.A)
	b := c.B*c.A + (1 - c.A)
	return tcell.NewRGBColor(int32(r*255), int32(g*255), int32(b*255))
}
