// Package buffer provides the storage types used by the windowed feature
// pipeline: a fixed-capacity FIFO [Ring] that evicts its oldest sample in
// O(1), and a reusable float64 [Buffer] with a [Pool] for scratch memory in
// per-window analysis.
package buffer
