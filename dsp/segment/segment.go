package segment

import "math"

// Plan describes how a fixed-length recording is sliced into overlapping
// windows of equal sample length.
type Plan struct {
	// WindowSamples is the length of each window in samples.
	WindowSamples int
	// Step is the hop between consecutive window offsets in samples.
	Step int
	// Count is the number of full windows that fit into the recording.
	Count int
}

// WindowSamples converts a window duration in seconds to samples.
func WindowSamples(windowSeconds, sampleRate float64) int {
	return int(math.Round(windowSeconds * sampleRate))
}

// NewPlan computes the framing of totalSamples into windows of windowSamples
// with the given overlap fraction in [0,1).
//
// Trailing samples that do not fill a complete window are discarded. The
// resulting step is round(windowSamples*(1-overlap)), clamped to at least
// one sample.
func NewPlan(totalSamples, windowSamples int, overlap float64) (Plan, error) {
	if windowSamples < 2 {
		return Plan{}, validateWindowSamples(windowSamples)
	}

	if overlap < 0 || overlap >= 1 {
		return Plan{}, validateOverlap(overlap)
	}

	step := int(math.Round(float64(windowSamples) * (1 - overlap)))
	if step < 1 {
		step = 1
	}

	if totalSamples < windowSamples {
		return Plan{}, validateTotal(totalSamples, windowSamples)
	}

	count := (totalSamples-windowSamples)/step + 1

	return Plan{
		WindowSamples: windowSamples,
		Step:          step,
		Count:         count,
	}, nil
}

// Offset returns the sample offset of window i.
func (p Plan) Offset(i int) int {
	return i * p.Step
}

// Offsets returns all window offsets in chronological order.
func (p Plan) Offsets() []int {
	out := make([]int, p.Count)
	for i := range out {
		out[i] = p.Offset(i)
	}
	return out
}

// Slice returns window i of data as a view without copying.
// The returned slice must be treated as read-only by callers.
func (p Plan) Slice(data []float64, i int) []float64 {
	off := p.Offset(i)
	return data[off : off+p.WindowSamples]
}

// Frames returns all windows of data as views in chronological order.
func Frames(data []float64, p Plan) [][]float64 {
	out := make([][]float64, p.Count)
	for i := range out {
		out[i] = p.Slice(data, i)
	}
	return out
}
