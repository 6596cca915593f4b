package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/displaywire/displaylist"
	"github.com/wippyai/displaywire/primitive"
)

var (
	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	kindStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#98FB98"))

	geomStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))
)

func runDump(args []string, stdout, stderr io.Writer) error {
	var (
		common  commonFlags
		compact bool
	)
	fs := newFlagSet("dump", stderr, &common)
	fs.BoolVar(&compact, "compact", false, "the file uses LEB128 integers")
	if err := parse(fs, args, &common, stderr); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		printUsage(stderr)
		return errUsage
	}

	items, size, err := loadList(fs.Arg(0), compact)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s: %d items, %d bytes\n", fs.Arg(0), len(items), size)
	for i, item := range items {
		fmt.Fprintln(stdout, formatItem(i, item))
		fmt.Fprintln(stdout, "    "+itemDetail(item))
	}
	return nil
}

// loadList reads and decodes a whole list file; trailing bytes are an error.
func loadList(path string, compact bool) ([]displaylist.DisplayItem, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read file: %w", err)
	}

	r := primitive.NewReader(data)
	if compact {
		r = primitive.NewCompactReader(data)
	}
	items, err := displaylist.DecodeList(r)
	if err != nil {
		return nil, 0, fmt.Errorf("decode: %w", err)
	}
	if r.Remaining() > 0 {
		return nil, 0, fmt.Errorf("decode: %d trailing bytes after %d items", r.Remaining(), len(items))
	}
	return items, len(data), nil
}

func formatItem(i int, item displaylist.DisplayItem) string {
	kind := item.Item.Kind()
	if kind == "" {
		kind = "?"
	}
	return indexStyle.Render(fmt.Sprintf("#%-3d", i)) + " " +
		kindStyle.Render(fmt.Sprintf("%-10s", kind)) + " " +
		geomStyle.Render(formatRect(item.Rect)) +
		" clip " + formatRect(item.Clip.Main)
}

func formatRect(r displaylist.Rect) string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height)
}

func itemDetail(item displaylist.DisplayItem) string {
	_, payload := item.Item.Active()
	detail := fmt.Sprintf("%+v", payload)
	if !item.Clip.Complex.Empty() {
		detail += fmt.Sprintf(" complex-clips=%d@%d", item.Clip.Complex.Length, item.Clip.Complex.Start)
	}
	return strings.TrimSpace(detail)
}
