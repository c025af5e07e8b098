package features

import (
	"fmt"

	"github.com/cwbudde/algo-imu/dsp/buffer"
	"github.com/cwbudde/algo-imu/dsp/core"
	"github.com/cwbudde/algo-imu/imu"
)

// Channel identifies one scalar sensor axis.
type Channel int

const (
	AccelX Channel = iota
	AccelY
	AccelZ
	GyroX
	GyroY
	GyroZ

	NumChannels
)

var channelNames = [NumChannels]string{"accel_x", "accel_y", "accel_z", "gyro_x", "gyro_y", "gyro_z"}

// String returns the channel name.
func (c Channel) String() string {
	if c < 0 || c >= NumChannels {
		return fmt.Sprintf("Channel(%d)", int(c))
	}
	return channelNames[c]
}

// ParseChannel returns the channel with the given name.
func ParseChannel(name string) (Channel, error) {
	for i, n := range channelNames {
		if n == name {
			return Channel(i), nil
		}
	}
	return 0, fmt.Errorf("features: unknown channel %q", name)
}

// Window holds the most recent samples of all six channels. Every channel
// has the same capacity and receives exactly one value per Add, so index i
// of every channel refers to the same sample.
type Window struct {
	channels [NumChannels]*buffer.Ring
}

// NewWindow returns an empty Window retaining size samples.
func NewWindow(size int) (*Window, error) {
	if err := core.ValidateWindowSize(size); err != nil {
		return nil, fmt.Errorf("features: %w", err)
	}
	w := &Window{}
	for i := range w.channels {
		w.channels[i] = buffer.NewRing(size)
	}
	return w, nil
}

// Add appends one sample, evicting the oldest sample from all channels once
// the window is full.
func (w *Window) Add(accel, gyro imu.Vec3) {
	for axis := range 3 {
		w.channels[AccelX+Channel(axis)].Push(accel[axis])
		w.channels[GyroX+Channel(axis)].Push(gyro[axis])
	}
}

// Len returns the number of samples held.
func (w *Window) Len() int {
	return w.channels[AccelX].Len()
}

// Cap returns the window size.
func (w *Window) Cap() int {
	return w.channels[AccelX].Cap()
}

// Full reports whether the window holds Cap samples.
func (w *Window) Full() bool {
	return w.channels[AccelX].Full()
}

// Channel returns a chronological copy of channel c. It panics for an
// invalid channel.
func (w *Window) Channel(c Channel) []float64 {
	return w.channels[c].Slice()
}

// copyChannel is Channel writing into dst.
func (w *Window) copyChannel(dst []float64, c Channel) []float64 {
	return w.channels[c].CopyTo(dst)
}

// Reset empties the window.
func (w *Window) Reset() {
	for _, r := range w.channels {
		r.Reset()
	}
}
