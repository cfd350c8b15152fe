package psd

import (
	"errors"
	"fmt"
)

var errNoChannels = errors.New("psd signal must have at least one channel")

func validateConfig(cfg Config) error {
	if cfg.SampleRate <= 0 {
		return fmt.Errorf("psd sample rate must be > 0: %f", cfg.SampleRate)
	}

	if cfg.WindowLength <= 0 {
		return fmt.Errorf("psd window length must be > 0 seconds: %f", cfg.WindowLength)
	}

	if cfg.WindowOverlap < 0 || cfg.WindowOverlap >= 1 {
		return fmt.Errorf("psd window overlap must be in [0,1): %f", cfg.WindowOverlap)
	}

	lo, hi := cfg.FrequencyLimits[0], cfg.FrequencyLimits[1]
	if lo < 0 {
		return fmt.Errorf("psd lower frequency limit must be >= 0: %f", lo)
	}

	if hi <= lo {
		return fmt.Errorf("psd frequency limits must be increasing: [%f, %f]", lo, hi)
	}

	if nyquist := cfg.SampleRate / 2; hi > nyquist {
		return fmt.Errorf("psd upper frequency limit %f exceeds Nyquist %f", hi, nyquist)
	}

	if cfg.Aggregation != AggregateMedian && cfg.Aggregation != AggregateMean {
		return fmt.Errorf("psd unknown aggregation: %d", cfg.Aggregation)
	}

	return nil
}

func validateSignal(signal [][]float64, channels []string) (totalSamples int, err error) {
	if len(signal) == 0 {
		return 0, errNoChannels
	}

	if len(channels) != len(signal) {
		return 0, fmt.Errorf("psd channel label count %d does not match channel count %d", len(channels), len(signal))
	}

	total := len(signal[0])
	for ch := range signal {
		if len(signal[ch]) != total {
			return 0, fmt.Errorf("psd channel %d has %d samples, want %d", ch, len(signal[ch]), total)
		}
	}

	if total == 0 {
		return 0, fmt.Errorf("psd signal must not be empty")
	}

	return total, nil
}
