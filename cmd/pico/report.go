package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/krobbi/pico/config"
	"github.com/krobbi/pico/packer"
)

// newRenderer returns a renderer for w honoring the color mode.
func newRenderer(w io.Writer, color string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch color {
	case config.ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		if !isTerminal(w) {
			r.SetColorProfile(termenv.Ascii)
		}
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// renderSummary formats a completed run as a title line and a table of
// entries in icon order.
func renderSummary(r *lipgloss.Renderer, res *packer.Result) string {
	var (
		titleStyle = r.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#7D56F4")).
				Padding(0, 1)
		headerStyle = r.NewStyle().Bold(true).Foreground(lipgloss.Color("#87CEEB")).Padding(0, 1)
		cellStyle   = r.NewStyle().Padding(0, 1)
		sizeStyle   = r.NewStyle().Foreground(lipgloss.Color("#98FB98")).Padding(0, 1)
		borderStyle = r.NewStyle().Foreground(lipgloss.Color("#666666"))
	)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("#", "Source", "Size", "BPP", "Palette", "Bytes").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 5:
				return sizeStyle
			default:
				return cellStyle
			}
		})

	for i, e := range res.Entries {
		t.Row(
			strconv.Itoa(i),
			e.Path,
			fmt.Sprintf("%dx%d", e.Width, e.Height),
			strconv.Itoa(int(e.BitsPerPixel)),
			palette(e.PaletteSize),
			byteCount(e.OriginalSize, e.Size),
		)
	}

	title := titleStyle.Render(fmt.Sprintf("%s: %d images, %d bytes", res.Output, len(res.Entries), res.Size))
	return title + "\n" + t.Render() + "\n"
}

func palette(size *uint32) string {
	if size == nil {
		return "-"
	}
	return strconv.FormatUint(uint64(*size), 10)
}

func byteCount(before, after int) string {
	if before == after {
		return strconv.Itoa(after)
	}
	return fmt.Sprintf("%d -> %d", before, after)
}
