package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunValidate(t *testing.T) {
	var out bytes.Buffer
	if err := runValidate(&out, "../../configs/game_config.yaml"); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"City: 24x18 cells", "plant", "Result: VALID"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunReplayWritesSnapshot(t *testing.T) {
	setupLogging(false)
	png := filepath.Join(t.TempDir(), "city.png")
	var out bytes.Buffer
	if err := runReplay(&out, "../../configs/game_config.yaml", "../../configs/replay_example.yaml", png); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Total Power: 45") {
		t.Errorf("unexpected summary:\n%s", out.String())
	}
	info, err := os.Stat(png)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("snapshot is empty")
	}
}

func TestRunValidateMissingFile(t *testing.T) {
	if err := runValidate(&bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing config")
	}
}
