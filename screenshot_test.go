package motion

import (
	"image/color"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"opened", "opened"},
		{"after-hover", "after-hover"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	img := unpremultiply([]byte{
		100, 50, 0, 200, // half-ish alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // clear
	}, 3, 1)
	want := []byte{127, 63, 0, 200, 10, 20, 30, 255, 0, 0, 0, 0}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], b)
		}
	}
}

func TestStageScreenshotQueue(t *testing.T) {
	s := NewStage(NewPlayer(), 100, 100)
	if s.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", s.ScreenshotDir, "screenshots")
	}
	s.Screenshot("a")
	s.Screenshot("b")
	if len(s.screenshotQueue) != 2 || s.screenshotQueue[0] != "a" || s.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", s.screenshotQueue)
	}
}

func TestStageFromSceneSnapshotQueuesScreenshot(t *testing.T) {
	spec, err := LoadScene([]byte(`
background: "#202020"
boxes: [{name: a, bounds: {width: 10, height: 10}}]
script: [{action: snapshot, label: first}]
`))
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewStageFromScene(spec)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Dispose()
	if err := s.Step(1.0 / 60); err != nil {
		t.Fatal(err)
	}
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "first" {
		t.Errorf("queue = %v, want [first]", s.screenshotQueue)
	}
	if s.Width != 640 || s.Height != 480 {
		t.Errorf("size = %dx%d", s.Width, s.Height)
	}
	if c, ok := s.ClearColor.(color.RGBA); !ok || c != (color.RGBA{0x20, 0x20, 0x20, 0xff}) {
		t.Errorf("ClearColor = %v", s.ClearColor)
	}
}
