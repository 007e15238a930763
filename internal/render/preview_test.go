package render

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"

	"github.com/masktools/mask-merge-mcp/internal/geometry"
)

func square(x, y, size float64) geometry.Polygon {
	return geometry.Polygon{
		{X: x, Y: y},
		{X: x + size, Y: y},
		{X: x + size, Y: y + size},
		{X: x, Y: y + size},
	}
}

// decodePreview decodes the base64 PNG payload of a preview result.
func decodePreview(t *testing.T, result *MaskPreviewResult) (width, height int) {
	t.Helper()

	raw, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestMaskPreview(t *testing.T) {
	polys := []geometry.Polygon{
		square(0, 0, 100),
		square(50, 50, 100),  // overlaps the first
		square(400, 0, 100),  // separate group
	}

	result, err := MaskPreview(polys, 1, 0)
	if err != nil {
		t.Fatalf("MaskPreview failed: %v", err)
	}
	if result == nil {
		t.Fatal("no result for valid polygons")
	}

	if result.GroupCount != 2 {
		t.Errorf("group count = %d, want 2", result.GroupCount)
	}
	if result.MimeType != "image/png" {
		t.Errorf("mime type = %q", result.MimeType)
	}

	w, h := decodePreview(t, result)
	if w != result.Width || h != result.Height {
		t.Errorf("decoded size %dx%d does not match reported %dx%d",
			w, h, result.Width, result.Height)
	}
	// Combined bbox is 500x150 at resolution 256/500, plus 2 pad cells
	// per side: the grid stays within the 256-cell cap plus padding.
	if w > 256+4 || h > 256+4 {
		t.Errorf("grid %dx%d exceeds the resolution cap", w, h)
	}
}

func TestMaskPreview_ScaleAndFit(t *testing.T) {
	polys := []geometry.Polygon{square(0, 0, 50)}

	unscaled, err := MaskPreview(polys, 1, 0)
	if err != nil {
		t.Fatalf("MaskPreview failed: %v", err)
	}

	scaled, err := MaskPreview(polys, 4, 0)
	if err != nil {
		t.Fatalf("MaskPreview failed: %v", err)
	}
	if scaled.Width != unscaled.Width*4 || scaled.Height != unscaled.Height*4 {
		t.Errorf("scale 4 size %dx%d, want %dx%d",
			scaled.Width, scaled.Height, unscaled.Width*4, unscaled.Height*4)
	}

	fitted, err := MaskPreview(polys, 4, 100)
	if err != nil {
		t.Fatalf("MaskPreview failed: %v", err)
	}
	if fitted.Width > 100 || fitted.Height > 100 {
		t.Errorf("fitted size %dx%d exceeds max dimension 100", fitted.Width, fitted.Height)
	}
}

func TestMaskPreview_NothingValid(t *testing.T) {
	result, err := MaskPreview([]geometry.Polygon{nil, {{X: 0, Y: 0}, {X: 1, Y: 1}}}, 1, 0)
	if err != nil {
		t.Fatalf("MaskPreview failed: %v", err)
	}
	if result != nil {
		t.Errorf("got %+v, want nil for invalid input", result)
	}
}
