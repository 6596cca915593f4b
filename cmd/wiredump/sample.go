package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/displaywire/displaylist"
	"github.com/wippyai/displaywire/guestmem"
	"github.com/wippyai/displaywire/primitive"
)

func runSample(args []string, stdout, stderr io.Writer) error {
	var (
		common  commonFlags
		output  string
		compact bool
		verify  bool
	)
	fs := newFlagSet("sample", stderr, &common)
	fs.StringVarP(&output, "output", "o", "", "file to write the encoded list to")
	fs.BoolVar(&compact, "compact", false, "use LEB128 integers")
	fs.BoolVar(&verify, "verify", false, "round trip the list through WebAssembly memory first")
	if err := parse(fs, args, &common, stderr); err != nil {
		return err
	}
	if output == "" {
		return fmt.Errorf("sample: -o is required")
	}

	items := sampleItems()
	if verify {
		if err := verifyInGuest(context.Background(), items); err != nil {
			return fmt.Errorf("verify: %w", err)
		}
	}

	w := primitive.NewWriter()
	if compact {
		w = primitive.NewCompactWriter()
	}
	if err := displaylist.EncodeList(w, items); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := os.WriteFile(output, w.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	fmt.Fprintf(stdout, "wrote %d items (%d bytes) to %s\n", len(items), w.Len(), output)
	return nil
}

// verifyInGuest encodes the list into a scratch linear memory, decodes it
// back and checks that the guest copy equals the original.
func verifyInGuest(ctx context.Context, items []displaylist.DisplayItem) error {
	scratch, err := guestmem.NewScratch(ctx, 1)
	if err != nil {
		return err
	}
	defer scratch.Close(ctx)

	sink := guestmem.NewSink(scratch.Memory(), 0)
	if err := displaylist.EncodeList(sink, items); err != nil {
		return err
	}

	back, err := displaylist.DecodeList(guestmem.NewSource(scratch.Memory(), 0, uint32(sink.Position())))
	if err != nil {
		return err
	}
	return compareItems(items, back)
}

func compareItems(want, got []displaylist.DisplayItem) error {
	if diff := cmp.Diff(want, got); diff != "" {
		return fmt.Errorf("guest copy differs (-want +got):\n%s", diff)
	}
	return nil
}

func sampleItems() []displaylist.DisplayItem {
	clip := displaylist.NewClipRegion(displaylist.NewRect(0, 0, 1024, 768), displaylist.ItemRange{})
	black := displaylist.NewColorF(0, 0, 0, 1)
	accent := displaylist.NewColorF(0.49, 0.34, 0.96, 1)
	side := displaylist.BorderSide{Width: 1, Color: black, Style: displaylist.BorderStyleSolid}

	return []displaylist.DisplayItem{
		{
			Item: displaylist.SpecificDisplayItem{Rectangle: &displaylist.RectangleDisplayItem{
				Color: displaylist.NewColorF(1, 1, 1, 1),
			}},
			Rect: displaylist.NewRect(0, 0, 1024, 768),
			Clip: clip,
		},
		{
			Item: displaylist.SpecificDisplayItem{BoxShadow: &displaylist.BoxShadowDisplayItem{
				BoxBounds:    displaylist.NewRect(32, 32, 960, 64),
				Offset:       displaylist.Point2D{X: 0, Y: 2},
				Color:        black.ScaleRGB(0.2),
				BlurRadius:   6,
				BorderRadius: 4,
				ClipMode:     displaylist.BoxShadowClipModeOutset,
			}},
			Rect: displaylist.NewRect(26, 26, 972, 78),
			Clip: clip,
		},
		{
			Item: displaylist.SpecificDisplayItem{Gradient: &displaylist.GradientDisplayItem{
				StartPoint: displaylist.Point2D{X: 32, Y: 32},
				EndPoint:   displaylist.Point2D{X: 32, Y: 96},
				Stops:      displaylist.ItemRange{Start: 0, Length: 2},
			}},
			Rect: displaylist.NewRect(32, 32, 960, 64),
			Clip: clip,
		},
		{
			Item: displaylist.SpecificDisplayItem{Text: &displaylist.TextDisplayItem{
				Glyphs:  displaylist.ItemRange{Start: 0, Length: 11},
				FontKey: displaylist.NewFontKey(1, 1),
				Size:    displaylist.AuFromPx(18),
				Color:   black,
			}},
			Rect: displaylist.NewRect(48, 52, 200, 24),
			Clip: clip,
		},
		{
			Item: displaylist.SpecificDisplayItem{Image: &displaylist.ImageDisplayItem{
				ImageKey:       displaylist.NewImageKey(1, 3),
				StretchSize:    displaylist.Size2D{Width: 48, Height: 48},
				ImageRendering: displaylist.ImageRenderingAuto,
			}},
			Rect: displaylist.NewRect(928, 40, 48, 48),
			Clip: displaylist.NewClipRegion(displaylist.NewRect(928, 40, 48, 48), displaylist.ItemRange{Start: 0, Length: 1}),
		},
		{
			Item: displaylist.SpecificDisplayItem{Border: &displaylist.BorderDisplayItem{
				Left: side, Right: side, Top: side, Bottom: side,
				Radius: displaylist.BorderRadiusUniform(8),
			}},
			Rect: displaylist.NewRect(32, 128, 480, 320),
			Clip: clip,
		},
		{
			Item: displaylist.SpecificDisplayItem{WebGL: &displaylist.WebGLDisplayItem{ContextId: 1}},
			Rect: displaylist.NewRect(544, 128, 448, 320),
			Clip: clip,
		},
		{
			Item: displaylist.SpecificDisplayItem{Rectangle: &displaylist.RectangleDisplayItem{Color: accent}},
			Rect: displaylist.NewRect(32, 480, 960, 4),
			Clip: clip,
		},
	}
}
