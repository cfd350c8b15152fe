package segment

import "fmt"

func validateWindowSamples(windowSamples int) error {
	return fmt.Errorf("segment window must span at least 2 samples: %d", windowSamples)
}

func validateOverlap(overlap float64) error {
	return fmt.Errorf("segment overlap must be in [0,1): %f", overlap)
}

func validateTotal(totalSamples, windowSamples int) error {
	return fmt.Errorf("segment window of %d samples exceeds recording of %d samples", windowSamples, totalSamples)
}
