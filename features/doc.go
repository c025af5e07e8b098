// Package features turns a stream of IMU samples into fixed-length feature
// vectors over a sliding window.
//
// The caller feeds samples with [Extractor.AddSample] and asks for features
// whenever it needs them:
//
//	sim, _ := imu.New(100, "walking")
//	ext, _ := features.NewExtractor(64, sim.SampleRate())
//	for {
//		sim.Advance()
//		ext.AddSample(sim.Acceleration(), sim.Gyroscope())
//		v := ext.ComputeFeatures()
//		...
//	}
//
// All six channels are buffered; [Extractor.ComputeFeatures] reads the
// vertical acceleration channel and [Extractor.ChannelFeatures] applies the
// same computation to any other channel.
package features
