package segment_test

import (
	"fmt"

	"github.com/cwbudde/algo-psd/dsp/segment"
)

func ExampleNewPlan() {
	// Ten seconds at 500 Hz, two-second windows, 50% overlap.
	plan, err := segment.NewPlan(5000, 1000, 0.5)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("windows: %d\n", plan.Count)
	fmt.Printf("step: %d samples\n", plan.Step)
	fmt.Printf("offsets: %v\n", plan.Offsets())
	// Output:
	// windows: 9
	// step: 500 samples
	// offsets: [0 500 1000 1500 2000 2500 3000 3500 4000]
}
