package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/phanxgames/motion"
)

const fadeScene = `
boxes:
  - name: card
    bounds: {x: 0, y: 0, width: 10, height: 10}
    initial: {opacity: 0}
    animate: {opacity: 1}
    transition: {duration: 0.1, ease: linear}
script:
  - {action: snapshot, label: start}
`

func TestRunPlay(t *testing.T) {
	spec, err := motion.LoadScene([]byte(fadeScene))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := runPlay(&out, spec, 60, 30, 0); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, `snapshot "start" @0 (1 running)`) {
		t.Errorf("missing start snapshot:\n%s", got)
	}
	if !strings.Contains(got, "final @31 (0 running)\n  card: opacity: 1\n") {
		t.Errorf("missing final frame:\n%s", got)
	}
}

func TestRunPlayRejectsBadFPS(t *testing.T) {
	spec, err := motion.LoadScene([]byte(fadeScene))
	if err != nil {
		t.Fatal(err)
	}
	if err := runPlay(&bytes.Buffer{}, spec, 0, 1, 0); err == nil {
		t.Error("expected error for fps 0")
	}
}
