package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func absf(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

func testWaves() []Wave {
	return []Wave{
		{Amplitude: 0.5, Wavelength: 8, Speed: 2, Direction: mgl32.Vec2{1, 0}},
		{Amplitude: 0.2, Wavelength: 3, Speed: 1, Direction: mgl32.Vec2{0.6, 0.8}},
	}
}

func TestSurfaceHeightBounded(t *testing.T) {
	waves := testWaves()
	var maxAmp float32
	for _, w := range waves {
		maxAmp += w.Amplitude
	}

	for x := float32(-20); x <= 20; x += 1.7 {
		for z := float32(-20); z <= 20; z += 2.3 {
			h := surfaceHeight(waves, x, z, 4.2)
			if absf(h) > maxAmp+1e-4 {
				t.Errorf("Height %v at (%v, %v) exceeds summed amplitude %v", h, x, z, maxAmp)
			}
		}
	}
}

func TestSurfaceHeightPeriodicInTime(t *testing.T) {
	wave := Wave{Amplitude: 0.4, Wavelength: 6, Speed: 1.5, Direction: mgl32.Vec2{1, 0}}
	waves := []Wave{wave}
	period := wave.Period()

	for _, tt := range []float32{0, 0.3, 1.9, 7.7} {
		h0 := surfaceHeight(waves, 2.5, -1.0, tt)
		h1 := surfaceHeight(waves, 2.5, -1.0, tt+period)
		if absf(h0-h1) > 1e-3 {
			t.Errorf("Height not periodic: h(%v)=%v, h(%v)=%v", tt, h0, tt+period, h1)
		}
	}
}

func TestSurfaceNormalUnitLength(t *testing.T) {
	waves := testWaves()
	for x := float32(-10); x <= 10; x += 0.9 {
		n := surfaceNormal(waves, x, -x, 1.1)
		if absf(n.Len()-1) > 1e-4 {
			t.Errorf("Normal at x=%v not unit length: %v", x, n)
		}
		if n.Y() <= 0 {
			t.Errorf("Normal at x=%v points below the surface: %v", x, n)
		}
	}
}

func TestSurfaceNormalMatchesFiniteDifference(t *testing.T) {
	waves := testWaves()
	const h = 1e-3
	const tol = 1e-2

	for _, p := range [][2]float32{{0, 0}, {3.1, -2.2}, {-7.5, 4.9}} {
		x, z := p[0], p[1]
		n := surfaceNormal(waves, x, z, 2.5)

		dx := (surfaceHeight(waves, x+h, z, 2.5) - surfaceHeight(waves, x-h, z, 2.5)) / (2 * h)
		dz := (surfaceHeight(waves, x, z+h, 2.5) - surfaceHeight(waves, x, z-h, 2.5)) / (2 * h)
		want := mgl32.Vec3{-dx, 1, -dz}.Normalize()

		if n.Sub(want).Len() > tol {
			t.Errorf("Normal at (%v, %v): analytic %v, finite-difference %v", x, z, n, want)
		}
	}
}

func TestGridIndices(t *testing.T) {
	const cols, rows = 4, 3
	indices := gridIndices(cols, rows)

	if len(indices) != cols*rows*6 {
		t.Fatalf("Expected %d indices, got %d", cols*rows*6, len(indices))
	}

	limit := uint32(gridVertexCount(cols, rows))
	for i, idx := range indices {
		if idx >= limit {
			t.Fatalf("Index %d at position %d out of range (%d vertices)", idx, i, limit)
		}
	}

	// Each triangle must be non-degenerate
	for i := 0; i < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if a == b || b == c || a == c {
			t.Errorf("Degenerate triangle at %d: (%d, %d, %d)", i, a, b, c)
		}
	}
}

func TestTessellate(t *testing.T) {
	const cols, rows = 3, 2
	waves := testWaves()

	verts := make([]float32, gridVertexCount(cols, rows)*floatsPerVertex)
	tessellate(verts, waves, -1.5, -1.0, 1.0, 1.0, cols, rows, 0.7)

	for v := 0; v < gridVertexCount(cols, rows); v++ {
		base := v * floatsPerVertex
		x, y, z := verts[base], verts[base+1], verts[base+2]

		if want := surfaceHeight(waves, x, z, 0.7); absf(y-want) > 1e-5 {
			t.Errorf("Vertex %d: height %v, want %v", v, y, want)
		}

		n := mgl32.Vec3{verts[base+3], verts[base+4], verts[base+5]}
		if want := surfaceNormal(waves, x, z, 0.7); n.Sub(want).Len() > 1e-5 {
			t.Errorf("Vertex %d: normal %v, want %v", v, n, want)
		}
	}

	// Corner vertices must span the requested extent
	last := (gridVertexCount(cols, rows) - 1) * floatsPerVertex
	if verts[0] != -1.5 || verts[2] != -1.0 {
		t.Errorf("First vertex at (%v, %v), want (-1.5, -1.0)", verts[0], verts[2])
	}
	if verts[last] != -1.5+float32(cols) || verts[last+2] != -1.0+float32(rows) {
		t.Errorf("Last vertex at (%v, %v), want (%v, %v)", verts[last], verts[last+2], -1.5+float32(cols), -1.0+float32(rows))
	}
}

func TestDefaultWavesAreSane(t *testing.T) {
	for i, w := range DefaultWaves() {
		if w.Amplitude <= 0 || w.Wavelength <= 0 || w.Speed <= 0 {
			t.Errorf("Wave %d has non-positive parameters: %+v", i, w)
		}
		if absf(w.Direction.Len()-1) > 1e-2 {
			t.Errorf("Wave %d direction not normalized: %v", i, w.Direction)
		}
	}
}
