package psd

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-psd/dsp/segment"
	"github.com/cwbudde/algo-psd/dsp/spectrum"
	"github.com/cwbudde/algo-psd/dsp/window"
)

const (
	defaultWindowLength  = 2.0
	defaultWindowOverlap = 0.5
	defaultLowerFreqHz   = 2.0
	defaultUpperFreqHz   = 24.0

	// powerFloor clamps aggregated power before the logarithm so that silent
	// cells produce a finite floor value instead of -Inf.
	powerFloor = 1e-24

	// freqGridTolerance absorbs floating-point drift when deciding whether
	// the upper frequency limit is still on the grid.
	freqGridTolerance = 1e-9
)

// Config holds PSD estimation parameters.
//
// Zero-valued fields select the documented defaults: a window length of 2 s,
// a window overlap of 0.5, frequency limits of [2, 24] Hz and a Hann taper.
// SampleRate has no default and must be set.
type Config struct {
	SampleRate      float64
	WindowLength    float64    // seconds
	WindowOverlap   float64    // fraction of the window length, [0,1)
	FrequencyLimits [2]float64 // [lower, upper] in Hz
	WindowType      window.Type
	Aggregation     Aggregation
	Demean          bool // remove the per-window mean before tapering
}

// Result holds a PSD estimate.
//
// PSD is indexed by [channel][frequency] and carries log10 power-density
// values (per-window power aggregated across windows, divided by the taper
// ENBW in Hz). Frequencies is the shared frequency axis in Hz; Channels
// mirrors the input labels. A Result is never mutated after it is returned.
type Result struct {
	PSD         [][]float64
	Frequencies []float64
	Channels    []string
}

// Estimator computes robust PSD estimates from multichannel recordings.
type Estimator struct {
	cfg Config
}

// NewEstimator validates the configuration and returns a ready estimator.
func NewEstimator(cfg Config) (*Estimator, error) {
	cfg = normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return &Estimator{cfg: cfg}, nil
}

// Estimate is a one-shot PSD estimation for a channels-by-samples recording.
func Estimate(signal [][]float64, channels []string, cfg Config) (Result, error) {
	e, err := NewEstimator(cfg)
	if err != nil {
		return Result{}, err
	}

	return e.Estimate(signal, channels)
}

// Config returns the normalized estimator configuration.
func (e *Estimator) Config() Config {
	return e.cfg
}

// Estimate computes the PSD of a channels-by-samples recording.
//
// Each channel is segmented into overlapping windows, every window is
// tapered, zero-padded to the next power of two and transformed; the
// per-bin power values are collapsed across windows (median by default)
// and normalized by the taper ENBW before taking log10.
//
// All configuration and shape problems are reported before any spectral
// work starts; there is no partial output.
func (e *Estimator) Estimate(signal [][]float64, channels []string) (Result, error) {
	cfg := e.cfg

	total, err := validateSignal(signal, channels)
	if err != nil {
		return Result{}, err
	}

	windowSamples := segment.WindowSamples(cfg.WindowLength, cfg.SampleRate)

	plan, err := segment.NewPlan(total, windowSamples, cfg.WindowOverlap)
	if err != nil {
		return Result{}, fmt.Errorf("psd segmentation: %w", err)
	}

	fftSize := nextPowerOf2(windowSamples)

	freqs := frequencyAxis(cfg.FrequencyLimits, cfg.WindowLength)
	bins := make([]int, len(freqs))
	for i, f := range freqs {
		bins[i] = spectrum.NearestBin(f, cfg.SampleRate, fftSize)
	}

	taper := window.Generate(cfg.WindowType, windowSamples)

	enbwHz, err := window.EquivalentNoiseBandwidthHz(taper, cfg.SampleRate)
	if err != nil {
		return Result{}, fmt.Errorf("psd taper: %w", err)
	}

	taperSum := 0.0
	for _, w := range taper {
		taperSum += w
	}

	fftPlan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("psd fft plan: %w", err)
	}

	// Per-bin scale for a single-taper periodogram normalized by the
	// coherent gain, with the usual one-sided doubling away from DC and
	// Nyquist. Dividing these values by the ENBW in Hz yields a one-sided
	// spectral density. The scale does not depend on the padded length.
	baseScale := 1 / (taperSum * taperSum)
	nyquistBin := fftSize / 2
	scales := make([]float64, len(bins))
	for i, bin := range bins {
		scales[i] = 2 * baseScale
		if bin == 0 || bin == nyquistBin {
			scales[i] = baseScale
		}
	}

	in := make([]complex128, fftSize)
	out := make([]complex128, fftSize)

	// powers[ch][window][frequency]
	powers := make([][][]float64, len(signal))

	for ch := range signal {
		powers[ch] = make([][]float64, plan.Count)

		for wi := 0; wi < plan.Count; wi++ {
			seg := plan.Slice(signal[ch], wi)

			mean := 0.0
			if cfg.Demean {
				for _, v := range seg {
					mean += v
				}
				mean /= float64(len(seg))
			}

			for i := 0; i < windowSamples; i++ {
				in[i] = complex((seg[i]-mean)*taper[i], 0)
			}
			for i := windowSamples; i < fftSize; i++ {
				in[i] = 0
			}

			if err := fftPlan.Forward(out, in); err != nil {
				return Result{}, fmt.Errorf("psd fft: %w", err)
			}

			row := make([]float64, len(bins))
			for fi, bin := range bins {
				re := real(out[bin])
				im := imag(out[bin])
				row[fi] = (re*re + im*im) * scales[fi]
			}

			powers[ch][wi] = row
		}
	}

	matrix := make([][]float64, len(signal))
	scratch := make([]float64, plan.Count)

	for ch := range powers {
		matrix[ch] = make([]float64, len(bins))

		for fi := range bins {
			for wi := range powers[ch] {
				scratch[wi] = powers[ch][wi][fi]
			}

			agg := aggregate(cfg.Aggregation, scratch)
			if agg < powerFloor {
				agg = powerFloor
			}

			matrix[ch][fi] = math.Log10(agg / enbwHz)
		}
	}

	return Result{
		PSD:         matrix,
		Frequencies: freqs,
		Channels:    append([]string(nil), channels...),
	}, nil
}

// frequencyAxis returns the frequency-of-interest grid: limits[0],
// limits[0]+1/windowLength, ... up to limits[1] inclusive.
func frequencyAxis(limits [2]float64, windowLength float64) []float64 {
	df := 1 / windowLength

	n := int(math.Floor((limits[1]-limits[0])/df+freqGridTolerance)) + 1

	out := make([]float64, n)
	for i := range out {
		out[i] = limits[0] + float64(i)*df
	}

	return out
}

func normalizeConfig(cfg Config) Config {
	if cfg.WindowLength == 0 {
		cfg.WindowLength = defaultWindowLength
	}

	if cfg.WindowOverlap == 0 {
		cfg.WindowOverlap = defaultWindowOverlap
	}

	if cfg.FrequencyLimits == [2]float64{} {
		cfg.FrequencyLimits = [2]float64{defaultLowerFreqHz, defaultUpperFreqHz}
	}

	if cfg.WindowType == 0 {
		cfg.WindowType = window.TypeHann
	}

	return cfg
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
