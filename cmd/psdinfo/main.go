// Command psdinfo prints the analysis plan of a median-Welch PSD estimation.
//
// Usage:
//
//	psdinfo [flags]
//
// Examples:
//
//	psdinfo -rate 500 -duration 60
//	psdinfo -rate 256 -duration 20 -window 2 -overlap 0.5 -flow 2 -fhigh 24
//	psdinfo -rate 1000 -duration 300 -window 4 -taper hamming
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-psd/dsp/segment"
	"github.com/cwbudde/algo-psd/dsp/window"
	"github.com/cwbudde/algo-psd/measure/psd"
)

func main() {
	rate := flag.Float64("rate", 500, "sampling rate in Hz")
	duration := flag.Float64("duration", 60, "recording duration in seconds")
	windowLen := flag.Float64("window", 2, "window length in seconds")
	overlap := flag.Float64("overlap", 0.5, "window overlap fraction in [0,1)")
	flow := flag.Float64("flow", 2, "lower frequency limit in Hz")
	fhigh := flag.Float64("fhigh", 24, "upper frequency limit in Hz")
	taper := flag.String("taper", "hann", "taper type (hann, hamming, blackman, flattop)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: psdinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the analysis plan of a median-Welch PSD estimation:\n")
		fmt.Fprintf(os.Stderr, "window geometry, FFT size, taper ENBW and frequency axis.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	winType, err := taperType(*taper)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	est, err := psd.NewEstimator(psd.Config{
		SampleRate:      *rate,
		WindowLength:    *windowLen,
		WindowOverlap:   *overlap,
		FrequencyLimits: [2]float64{*flow, *fhigh},
		WindowType:      winType,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	cfg := est.Config()

	totalSamples := int(*duration * cfg.SampleRate)
	windowSamples := segment.WindowSamples(cfg.WindowLength, cfg.SampleRate)

	plan, err := segment.NewPlan(totalSamples, windowSamples, cfg.WindowOverlap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	coeffs := window.Generate(cfg.WindowType, windowSamples)

	enbwBins, err := window.EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	enbwHz := enbwBins * cfg.SampleRate / float64(windowSamples)

	fftSize := 1
	for fftSize < windowSamples {
		fftSize <<= 1
	}

	df := 1 / cfg.WindowLength
	binCount := int((cfg.FrequencyLimits[1]-cfg.FrequencyLimits[0])/df) + 1
	lastFreq := cfg.FrequencyLimits[0] + float64(binCount-1)*df

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "recording\t%.1f s at %.1f Hz (%d samples)\n", *duration, cfg.SampleRate, totalSamples)
	fmt.Fprintf(tw, "window\t%.3f s (%d samples, step %d)\n", cfg.WindowLength, plan.WindowSamples, plan.Step)
	fmt.Fprintf(tw, "windows\t%d\n", plan.Count)
	fmt.Fprintf(tw, "fft size\t%d\n", fftSize)
	fmt.Fprintf(tw, "taper\t%s\n", *taper)
	fmt.Fprintf(tw, "enbw\t%.4f bins (%.4f Hz)\n", enbwBins, enbwHz)
	fmt.Fprintf(tw, "frequency axis\t%.2f .. %.2f Hz, step %.4f Hz (%d bins)\n",
		cfg.FrequencyLimits[0], lastFreq, df, binCount)
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		os.Exit(1)
	}
}

func taperType(name string) (window.Type, error) {
	switch name {
	case "hann":
		return window.TypeHann, nil
	case "hamming":
		return window.TypeHamming, nil
	case "blackman":
		return window.TypeBlackman, nil
	case "flattop":
		return window.TypeFlatTop, nil
	default:
		return 0, fmt.Errorf("unsupported taper: %s", name)
	}
}
