package core

import (
	"errors"
	"math"
	"testing"
)

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(200), WithWindowSize(128))
	if cfg.SampleRate != 200 {
		t.Fatalf("sample rate = %v, want 200", cfg.SampleRate)
	}
	if cfg.WindowSize != 128 {
		t.Fatalf("window size = %d, want 128", cfg.WindowSize)
	}
	if cfg.TimeStep() != 0.005 {
		t.Fatalf("time step = %v, want 0.005", cfg.TimeStep())
	}
	if cfg.BinWidth() != 1.5625 {
		t.Fatalf("bin width = %v, want 1.5625", cfg.BinWidth())
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithWindowSize(-1), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  ProcessorConfig
		want error
	}{
		{name: "default", cfg: DefaultProcessorConfig()},
		{name: "zero rate", cfg: ProcessorConfig{SampleRate: 0, WindowSize: 4}, want: ErrInvalidSampleRate},
		{name: "nan rate", cfg: ProcessorConfig{SampleRate: math.NaN(), WindowSize: 4}, want: ErrInvalidSampleRate},
		{name: "inf rate", cfg: ProcessorConfig{SampleRate: math.Inf(1), WindowSize: 4}, want: ErrInvalidSampleRate},
		{name: "zero window", cfg: ProcessorConfig{SampleRate: 100, WindowSize: 0}, want: ErrInvalidWindowSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
