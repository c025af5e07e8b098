package core

// ProcessorConfig defines the sampling settings shared by the simulator and
// the feature extractor.
type ProcessorConfig struct {
	SampleRate float64
	WindowSize int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns defaults suited to human-activity streams.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 100,
		WindowSize: 64,
	}
}

// WithSampleRate sets the sampling rate in Hz.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithWindowSize sets the analysis window length in samples.
func WithWindowSize(windowSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if windowSize > 0 {
			cfg.WindowSize = windowSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports whether cfg can drive a simulator and an extractor.
func (cfg ProcessorConfig) Validate() error {
	if err := ValidateSampleRate(cfg.SampleRate); err != nil {
		return err
	}
	return ValidateWindowSize(cfg.WindowSize)
}

// TimeStep returns the sampling interval in seconds.
func (cfg ProcessorConfig) TimeStep() float64 {
	return 1 / cfg.SampleRate
}

// BinWidth returns the frequency resolution in Hz of a window-length transform.
func (cfg ProcessorConfig) BinWidth() float64 {
	return cfg.SampleRate / float64(cfg.WindowSize)
}
