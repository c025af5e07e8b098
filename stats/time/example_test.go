package time_test

import (
	"fmt"

	timestats "github.com/cwbudde/algo-imu/stats/time"
)

func ExampleVariance() {
	window := []float64{9.2, 9.4, 9.6, 9.8}
	fmt.Printf("mean=%.2f var=%.2f\n", timestats.DC(window), timestats.Variance(window))

	// Output:
	// mean=9.50 var=0.05
}
