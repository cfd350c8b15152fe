package window

import (
	"math"
	"testing"
)

func TestGenerateHannSymmetricExactValues(t *testing.T) {
	got := Generate(TypeHann, 5)
	want := []float64{0, 0.5, 1, 0.5, 0}

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestGenerateSymmetry(t *testing.T) {
	for _, typ := range []Type{TypeHann, TypeHamming, TypeBlackman, TypeFlatTop} {
		coeffs := Generate(typ, 64)
		n := len(coeffs)
		for i := 0; i < n/2; i++ {
			if math.Abs(coeffs[i]-coeffs[n-1-i]) > 1e-12 {
				t.Fatalf("type %d: asymmetric at index %d: %v vs %v", typ, i, coeffs[i], coeffs[n-1-i])
			}
		}
	}
}

func TestGeneratePeriodicHannCoherentGain(t *testing.T) {
	n := 256
	coeffs := Generate(TypeHann, n, WithPeriodic())

	// Periodic Hann sums to exactly N/2.
	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}
	if math.Abs(sum-float64(n)/2) > 1e-9 {
		t.Fatalf("periodic Hann sum mismatch: got %v want %v", sum, float64(n)/2)
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	if got := Generate(TypeHann, 0); got != nil {
		t.Fatalf("expected nil for zero length, got %v", got)
	}
	if got := Generate(TypeHann, -3); got != nil {
		t.Fatalf("expected nil for negative length, got %v", got)
	}
}

func TestHannConstructorValidation(t *testing.T) {
	if _, err := Hann(0); err == nil {
		t.Fatalf("expected error for zero size")
	}
	coeffs, err := Hann(16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coeffs) != 16 {
		t.Fatalf("length mismatch: got %d want 16", len(coeffs))
	}
}

func TestEquivalentNoiseBandwidthRectangular(t *testing.T) {
	coeffs := Generate(TypeRectangular, 128)

	enbw, err := EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(enbw-1) > 1e-12 {
		t.Fatalf("rectangular ENBW mismatch: got %v want 1", enbw)
	}
}

func TestEquivalentNoiseBandwidthPeriodicHann(t *testing.T) {
	coeffs := Generate(TypeHann, 1024, WithPeriodic())

	enbw, err := EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Periodic Hann ENBW is exactly 1.5 bins.
	if math.Abs(enbw-1.5) > 1e-9 {
		t.Fatalf("Hann ENBW mismatch: got %v want 1.5", enbw)
	}
}

func TestEquivalentNoiseBandwidthHz(t *testing.T) {
	sampleRate := 500.0
	n := 1000
	coeffs := Generate(TypeHann, n, WithPeriodic())

	enbwHz, err := EquivalentNoiseBandwidthHz(coeffs, sampleRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 1.5 bins at 0.5 Hz bin spacing.
	want := 1.5 * sampleRate / float64(n)
	if math.Abs(enbwHz-want) > 1e-9 {
		t.Fatalf("ENBW Hz mismatch: got %v want %v", enbwHz, want)
	}
}

func TestEquivalentNoiseBandwidthErrors(t *testing.T) {
	if _, err := EquivalentNoiseBandwidth(nil); err == nil {
		t.Fatalf("expected error for empty coefficients")
	}
	if _, err := EquivalentNoiseBandwidth([]float64{1, -1}); err == nil {
		t.Fatalf("expected error for zero coherent gain")
	}
	if _, err := EquivalentNoiseBandwidthHz([]float64{1, 1}, 0); err == nil {
		t.Fatalf("expected error for zero sample rate")
	}
}

func TestApplyCoefficients(t *testing.T) {
	samples := []float64{1, 2, 3, 4}
	coeffs := []float64{0.5, 0.5, 0.5, 0.5}

	out, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range out {
		if math.Abs(out[i]-samples[i]*0.5) > 1e-12 {
			t.Fatalf("index %d: got %v", i, out[i])
		}
	}
	// Input must be untouched.
	if samples[1] != 2 {
		t.Fatalf("input mutated: %v", samples)
	}

	if _, err := ApplyCoefficients(samples, coeffs[:2]); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}

func TestApplyInPlaceMatchesGenerate(t *testing.T) {
	buf := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	Apply(TypeHamming, buf)

	want := Generate(TypeHamming, len(buf))
	for i := range buf {
		if math.Abs(buf[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: got %v want %v", i, buf[i], want[i])
		}
	}
}
