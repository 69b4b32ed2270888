package sim

import (
	"math"
	"testing"

	"github.com/lixenwraith/island/constants"
)

func TestNewWaterInitialState(t *testing.T) {
	w := NewWater(40, 24)

	if w.Width() != 40 {
		t.Fatalf("Expected 40 columns, got %d", w.Width())
	}
	if w.IslandRow() != (24*3/4)-1 {
		t.Errorf("Expected island row %d, got %d", (24*3/4)-1, w.IslandRow())
	}
	for i := 0; i < w.Width(); i++ {
		if w.HeightAt(i) != constants.WaterBaseTarget {
			t.Errorf("Column %d height = %v, expected baseline %v", i, w.HeightAt(i), constants.WaterBaseTarget)
		}
		if w.VelocityAt(i) != 0 {
			t.Errorf("Column %d velocity = %v, expected 0", i, w.VelocityAt(i))
		}
	}
}

// displace pushes every column off the equilibrium target by delta.
func displace(w *Water, delta float64) {
	for i := range w.cols {
		w.cols[i].height += delta
	}
}

func TestStepStaysFiniteAndConverges(t *testing.T) {
	w := NewWater(60, 24)
	displace(w, 20)

	// Track the worst deviation from target over two successive windows.
	// The spring is underdamped so per-frame monotonicity is not expected,
	// but the envelope must shrink and heights must stay finite.
	maxDev := func(frames int) float64 {
		worst := 0.0
		for f := 0; f < frames; f++ {
			w.Step()
			for i := 0; i < w.Width(); i++ {
				h := w.HeightAt(i)
				if math.IsNaN(h) || math.IsInf(h, 0) {
					t.Fatalf("Column %d height not finite after step", i)
				}
				if d := math.Abs(h - w.Target()); d > worst {
					worst = d
				}
			}
		}
		return worst
	}

	early := maxDev(150)
	mid := maxDev(150)
	late := maxDev(150)

	if mid >= early || late >= mid {
		t.Errorf("Expected deviation envelope to shrink: %v, %v, %v", early, mid, late)
	}
	if late > 1.0 {
		t.Errorf("Expected near-convergence after 450 frames, worst deviation %v", late)
	}
}

func TestStepUniformFieldStaysUniform(t *testing.T) {
	w := NewWater(30, 24)
	displace(w, 5)

	for f := 0; f < 50; f++ {
		w.Step()
		first := w.HeightAt(0)
		for i := 1; i < w.Width(); i++ {
			if math.Abs(w.HeightAt(i)-first) > 1e-9 {
				t.Fatalf("Frame %d: column %d height %v diverged from column 0 height %v", f, i, w.HeightAt(i), first)
			}
		}
	}
}

func TestStepDiffusionSymmetry(t *testing.T) {
	w := NewWater(21, 24)
	mid := 10
	w.cols[mid].height += 4

	w.Step()

	left, right := w.VelocityAt(mid-1), w.VelocityAt(mid+1)
	if math.Abs(left-right) > 1e-9 {
		t.Errorf("Neighbor velocities asymmetric: left %v, right %v", left, right)
	}
	if left <= 0 {
		t.Errorf("Expected raised column to push neighbors upward, got velocity %v", left)
	}
	if math.Abs(w.HeightAt(mid-1)-w.HeightAt(mid+1)) > 1e-9 {
		t.Errorf("Neighbor heights asymmetric: left %v, right %v", w.HeightAt(mid-1), w.HeightAt(mid+1))
	}

	// Mirror columns further out must match as well
	for off := 2; off <= mid; off++ {
		if math.Abs(w.HeightAt(mid-off)-w.HeightAt(mid+off)) > 1e-9 {
			t.Errorf("Offset %d heights asymmetric: %v vs %v", off, w.HeightAt(mid-off), w.HeightAt(mid+off))
		}
	}
}

func TestApplyImpulseTargetRatchet(t *testing.T) {
	w := NewWater(20, 24)
	limit := float64(24-3) * constants.SubRows

	prev := w.Target()
	for i := 0; i < 5000; i++ {
		w.ApplyImpulse(3, -2.5)
		cur := w.Target()
		if cur < prev {
			t.Fatalf("Target decreased from %v to %v", prev, cur)
		}
		if cur > limit {
			t.Fatalf("Target %v exceeded limit %v", cur, limit)
		}
		prev = cur
	}
	if math.Abs(prev-limit) > 1e-6 {
		t.Errorf("Expected target to saturate at %v, got %v", limit, prev)
	}
}

func TestApplyImpulseAddsVelocity(t *testing.T) {
	w := NewWater(10, 24)

	w.ApplyImpulse(4, -3.5)
	if w.VelocityAt(4) != -3.5 {
		t.Errorf("Expected velocity -3.5 on column 4, got %v", w.VelocityAt(4))
	}

	// Out-of-range impulses are ignored
	before := w.Target()
	w.ApplyImpulse(-1, -1)
	w.ApplyImpulse(10, -1)
	if w.Target() != before {
		t.Error("Out-of-range impulse must not ratchet the target")
	}
}

func TestReinitDiscardsWaveState(t *testing.T) {
	w := NewWater(40, 24)
	displace(w, 12)
	w.ApplyImpulse(5, -8)
	for i := 0; i < 10; i++ {
		w.Step()
	}

	w.Reinit(25, 16)

	if w.Width() != 25 {
		t.Fatalf("Expected 25 columns after reinit, got %d", w.Width())
	}
	if w.IslandRow() != (16*3/4)-1 {
		t.Errorf("Expected island row recomputed to %d, got %d", (16*3/4)-1, w.IslandRow())
	}
	for i := 0; i < w.Width(); i++ {
		if w.HeightAt(i) != w.Target() {
			t.Errorf("Column %d height %v, expected target %v", i, w.HeightAt(i), w.Target())
		}
		if w.VelocityAt(i) != 0 {
			t.Errorf("Column %d velocity %v, expected 0", i, w.VelocityAt(i))
		}
	}
}
