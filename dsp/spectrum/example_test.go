package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-imu/dsp/spectrum"
)

func ExampleDFT() {
	bins := spectrum.DFT([]float64{1, 0, -1, 0})
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 0.0 2.0 0.0
}

func ExampleBinFrequency() {
	fmt.Printf("%.4f Hz\n", spectrum.BinFrequency(1, 64, 100))
	// Output:
	// 1.5625 Hz
}
