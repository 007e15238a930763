package geometry

import "testing"

func TestFromFlat(t *testing.T) {
	tests := []struct {
		name   string
		coords []float64
		want   int // expected vertex count, 0 means nil
	}{
		{"triangle", []float64{0, 0, 10, 0, 5, 8}, 3},
		{"square", []float64{0, 0, 5, 0, 5, 5, 0, 5}, 4},
		{"too short", []float64{0, 0, 3, 0}, 0},
		{"empty", nil, 0},
		{"odd count", []float64{0, 0, 10, 0, 5, 8, 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poly := FromFlat(tt.coords)
			if tt.want == 0 {
				if poly != nil {
					t.Fatalf("FromFlat(%v) = %v, want nil", tt.coords, poly)
				}
				return
			}
			if len(poly) != tt.want {
				t.Fatalf("FromFlat(%v) has %d vertices, want %d", tt.coords, len(poly), tt.want)
			}
		})
	}
}

func TestFlatRoundTrip(t *testing.T) {
	coords := []float64{0, 0, 100, 0, 100, 100, 0, 100}
	poly := FromFlat(coords)

	got := poly.Flat()
	if len(got) != len(coords) {
		t.Fatalf("Flat() returned %d values, want %d", len(got), len(coords))
	}
	for i := range coords {
		if got[i] != coords[i] {
			t.Errorf("Flat()[%d] = %v, want %v", i, got[i], coords[i])
		}
	}
}

func TestValid(t *testing.T) {
	if (Polygon{{0, 0}, {1, 0}}).Valid() {
		t.Error("2-vertex polygon reported valid")
	}
	if !(Polygon{{0, 0}, {1, 0}, {0, 1}}).Valid() {
		t.Error("3-vertex polygon reported invalid")
	}
}

func TestBoundsBBox(t *testing.T) {
	b := Bounds{MinX: 10, MinY: 20, MaxX: 110, MaxY: 70}
	bbox := b.BBox()

	want := BBox{10, 20, 100, 50}
	if bbox != want {
		t.Errorf("BBox() = %v, want %v", bbox, want)
	}
}
