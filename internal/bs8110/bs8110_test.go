package bs8110

import (
	"math"
	"testing"
)

func TestLeverArm(t *testing.T) {
	// Small K: the 0.95d cap governs
	if got := LeverArm(0.01, 200); got != 0.95*200 {
		t.Errorf("LeverArm(0.01, 200) = %.3f, want capped at %.3f", got, 0.95*200)
	}
	// K at the singly-reinforced limit: the expression governs
	want := 200 * (0.5 + math.Sqrt(0.25-KLimit/0.9))
	if got := LeverArm(KLimit, 200); math.Abs(got-want) > 1e-9 {
		t.Errorf("LeverArm(KLimit, 200) = %.4f, want %.4f", got, want)
	}
}

func TestMaxShearStress(t *testing.T) {
	if got := MaxShearStress(25); math.Abs(got-4.0) > 1e-12 {
		t.Errorf("MaxShearStress(25) = %.4f, want 4.0", got)
	}
}

func TestUltimateLoad(t *testing.T) {
	p := Default()
	if got := p.UltimateLoad(10, 5); math.Abs(got-(1.4*10+1.6*5)) > 1e-12 {
		t.Errorf("UltimateLoad(10, 5) = %.4f, want 22", got)
	}
}

func TestDefaultParameters(t *testing.T) {
	p := Default()
	if p.SteelYield != 460 {
		t.Errorf("steel yield = %.0f, want 460", p.SteelYield)
	}
	if p.CoverInternal != 25 || p.CoverGround != 50 || p.CoverFooting != 75 {
		t.Errorf("covers = %.0f/%.0f/%.0f, want 25/50/75", p.CoverInternal, p.CoverGround, p.CoverFooting)
	}
}
