package buffer

// Ring is a fixed-capacity FIFO of float64 samples. Once full, every Push
// overwrites the oldest sample, so Len never exceeds Cap and the retained
// samples are always the most recent Cap insertions in chronological order.
//
// Ring is not safe for concurrent use.
type Ring struct {
	data []float64
	head int // index of the oldest sample
	size int
}

// NewRing returns an empty Ring holding at most capacity samples.
// A capacity below 1 is raised to 1.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{data: make([]float64, capacity)}
}

// Push appends v. If the ring was full, the oldest sample is evicted and
// returned with evicted == true.
func (r *Ring) Push(v float64) (old float64, evicted bool) {
	n := len(r.data)
	if r.size < n {
		r.data[(r.head+r.size)%n] = v
		r.size++
		return 0, false
	}

	old = r.data[r.head]
	r.data[r.head] = v
	r.head = (r.head + 1) % n
	return old, true
}

// Len returns the number of stored samples.
func (r *Ring) Len() int {
	return r.size
}

// Cap returns the fixed capacity.
func (r *Ring) Cap() int {
	return len(r.data)
}

// Full reports whether the next Push will evict a sample.
func (r *Ring) Full() bool {
	return r.size == len(r.data)
}

// At returns the i-th oldest sample. It panics if i is out of range.
func (r *Ring) At(i int) float64 {
	if i < 0 || i >= r.size {
		panic("buffer: ring index out of range")
	}
	return r.data[(r.head+i)%len(r.data)]
}

// CopyTo writes the samples oldest-first into dst, growing it if needed,
// and returns the filled slice.
func (r *Ring) CopyTo(dst []float64) []float64 {
	if cap(dst) < r.size {
		dst = make([]float64, r.size)
	}
	dst = dst[:r.size]

	first := len(r.data) - r.head
	if first >= r.size {
		copy(dst, r.data[r.head:r.head+r.size])
		return dst
	}
	copy(dst, r.data[r.head:])
	copy(dst[first:], r.data[:r.size-first])
	return dst
}

// Slice returns a newly allocated chronological copy of the samples.
func (r *Ring) Slice() []float64 {
	return r.CopyTo(nil)
}

// Reset discards all samples while keeping the capacity.
func (r *Ring) Reset() {
	r.head = 0
	r.size = 0
}
