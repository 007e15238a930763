package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/masktools/mask-merge-mcp/internal/geometry"
	"github.com/masktools/mask-merge-mcp/internal/merge"
)

// MaskPreviewResult contains a colorized occupancy-grid preview.
type MaskPreviewResult struct {
	// Width and Height of the output image in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// GroupCount is the number of overlap groups in the preview, each
	// painted in its own color.
	GroupCount int `json:"group_count"`

	// ImageBase64 is the preview encoded as base64 PNG. Empty cells are
	// transparent.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png" for previews.
	MimeType string `json:"mime_type"`
}

// MaskPreview rasterizes the polygon set onto the merge grid, paints each
// overlap group in a distinct color, and returns the result as base64 PNG.
//
// scale is an integer upscale factor applied with nearest-neighbor
// resampling so individual grid cells stay crisp; values below 1 are
// treated as 1. maxDim, when positive, bounds the longer output dimension
// by downscaling the final image to fit.
//
// Returns nil (no error) when the polygon set contains nothing valid to
// rasterize, mirroring the engine's "no result" contract.
func MaskPreview(polys []geometry.Polygon, scale, maxDim int) (*MaskPreviewResult, error) {
	groups := merge.GroupOverlapping(polys)

	grid, ok := merge.Rasterize(polys, groups)
	if !ok {
		return nil, nil
	}

	img := paintGrid(grid)

	if scale < 1 {
		scale = 1
	}
	var scaled image.Image = img
	if scale > 1 {
		scaled = transform.Resize(img, grid.Width*scale, grid.Height*scale,
			transform.NearestNeighbor)
	}

	if maxDim > 0 {
		b := scaled.Bounds()
		if b.Dx() > maxDim || b.Dy() > maxDim {
			scaled = imaging.Fit(scaled, maxDim, maxDim, imaging.Lanczos)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &MaskPreviewResult{
		Width:       scaled.Bounds().Dx(),
		Height:      scaled.Bounds().Dy(),
		GroupCount:  grid.Groups,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// paintGrid converts a labeled occupancy grid into an NRGBA image with one
// palette color per group label.
func paintGrid(grid *merge.LabeledGrid) *image.NRGBA {
	colors := palette(grid.Groups)

	img := image.NewNRGBA(image.Rect(0, 0, grid.Width, grid.Height))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			label := grid.Cells[y][x]
			if label == 0 {
				continue
			}
			img.SetNRGBA(x, y, colors[int(label-1)%len(colors)])
		}
	}
	return img
}

// palette generates n visually distinct colors by spacing hues evenly in
// HSV space.
func palette(n int) []color.NRGBA {
	if n < 1 {
		n = 1
	}

	colors := make([]color.NRGBA, n)
	for i := range colors {
		c := colorful.Hsv(float64(i)*360.0/float64(n), 0.65, 0.95)
		r, g, b := c.RGB255()
		colors[i] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}
