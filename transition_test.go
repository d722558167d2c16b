package motion

import (
	"errors"
	"testing"
	"time"
)

func TestDriverConfig(t *testing.T) {
	cfg, err := Transition{
		Duration:    0.5,
		Ease:        "easeOut",
		Times:       []float64{0, 0.2, 1},
		Repeat:      2,
		RepeatDelay: 0.1,
		RepeatType:  RepeatMirror,
	}.DriverConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Duration != 500*time.Millisecond {
		t.Errorf("Duration = %v", cfg.Duration)
	}
	if cfg.RepeatDelay != 100*time.Millisecond {
		t.Errorf("RepeatDelay = %v", cfg.RepeatDelay)
	}
	if cfg.Ease == nil {
		t.Error("Ease not resolved")
	}
	if len(cfg.Offset) != 3 || cfg.Repeat != 2 || cfg.RepeatType != RepeatMirror {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestDriverConfigDefaults(t *testing.T) {
	cfg, err := Transition{}.DriverConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Ease != nil || cfg.Duration != 0 || cfg.Type != TypeAuto {
		t.Errorf("zero Transition gave %+v", cfg)
	}
}

func TestDriverConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		tr    Transition
		field string
		is    error
	}{
		{"unknown ease", Transition{Ease: "wobble"}, "transition.ease", ErrUnknownEase},
		{"bounce out unsupported", Transition{Ease: "bounceOut"}, "transition.ease", ErrUnknownEase},
		{"unknown type", Transition{Type: "inertia"}, "transition.type", ErrInvalidTransition},
		{"unknown repeat type", Transition{RepeatType: "pingpong"}, "transition.repeatType", ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.tr.DriverConfig()
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("err = %v, want *ConfigError", err)
			}
			if ce.Field != tt.field {
				t.Errorf("Field = %q, want %q", ce.Field, tt.field)
			}
			if !errors.Is(err, tt.is) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.is)
			}
		})
	}
}

func TestEaseTable(t *testing.T) {
	for _, name := range EaseNames() {
		fn, err := EaseFunc(name)
		if err != nil {
			t.Fatalf("EaseFunc(%q): %v", name, err)
		}
		// Every curve starts at b and ends at b+c.
		if got := fn(0, 0, 1, 1); got > 1e-3 || got < -1e-3 {
			t.Errorf("%s(0) = %v", name, got)
		}
		if got := fn(1, 0, 1, 1); got > 1+1e-3 || got < 1-1e-3 {
			t.Errorf("%s(1) = %v", name, got)
		}
	}
	if len(EaseNames()) != 12 {
		t.Errorf("EaseNames() = %v", EaseNames())
	}
}

func TestAnticipateDipsBelowStart(t *testing.T) {
	if got := anticipate(0.2, 0, 1, 1); got >= 0 {
		t.Errorf("anticipate(0.2) = %v, want < 0", got)
	}
}
