package imu

// Vec3 is a three-axis measurement ordered x, y, z.
type Vec3 [3]float64

// X returns the x component.
func (v Vec3) X() float64 { return v[0] }

// Y returns the y component.
func (v Vec3) Y() float64 { return v[1] }

// Z returns the z component.
func (v Vec3) Z() float64 { return v[2] }

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sample is one simultaneous accelerometer and gyroscope reading.
type Sample struct {
	Accel Vec3 // m/s^2
	Gyro  Vec3 // deg/s
}
