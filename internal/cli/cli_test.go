package cli

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestStatsReportsPerfectMaze(t *testing.T) {
	out, err := execute(t, "stats", "--width", "21", "--height", "15", "--budget", "2000000")
	if err != nil {
		t.Fatalf("stats: %v\n%s", err, out)
	}
	for _, want := range []string{"spanning tree     ok", "border clean      ok", "Width: 21", "Height: 15", "Mode: idle"} {
		if !strings.Contains(out, want) {
			t.Fatalf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazeglow.toml")
	data := "width = 31\nheight = 31\nbudget = 2000000\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	out, err := execute(t, "stats", "--config", path, "--height", "17", "--set", "w=23")
	if err != nil {
		t.Fatalf("stats: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Width: 23") || !strings.Contains(out, "Height: 17") {
		t.Fatalf("expected --set width and flag height to win:\n%s", out)
	}
}

func TestBadOverridesFail(t *testing.T) {
	if _, err := execute(t, "stats", "--set", "nonsense"); err == nil {
		t.Fatal("malformed --set should fail")
	}
	if _, err := execute(t, "stats", "--width", "2"); err == nil {
		t.Fatal("a 2-wide grid should fail validation")
	}
	if _, err := execute(t, "stats", "--config", filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("missing config file should fail")
	}
}

func TestSnapshotWritesScaledPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.png")
	_, err := execute(t, "snapshot", "-o", path, "--ticks", "40",
		"--width", "21", "--height", "11", "--scale", "3", "--budget", "2000000")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	img := decodePNG(t, path)
	if b := img.Bounds(); b.Dx() != 63 || b.Dy() != 33 {
		t.Fatalf("snapshot size %dx%d, expected 63x33", b.Dx(), b.Dy())
	}
}

func TestSnapshotContactSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.png")
	_, err := execute(t, "snapshot", "-o", path, "--frames", "3", "--every", "10",
		"--width", "11", "--height", "11", "--scale", "1", "--budget", "2000000")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	b := decodePNG(t, path).Bounds()
	if b.Dx() < 3*11 || b.Dy() < 11 {
		t.Fatalf("contact sheet %dx%d is too small for three 11x11 frames", b.Dx(), b.Dy())
	}
}

func TestSnapshotRejectsBadFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if _, err := execute(t, "snapshot", "-o", path, "--frames", "0", "--width", "11", "--height", "11"); err == nil {
		t.Fatal("zero frames should fail")
	}
}

func TestSweepTabulatesSeeds(t *testing.T) {
	out, err := execute(t, "sweep", "--count", "3", "--seed", "10",
		"--width", "15", "--height", "15", "--budget", "2000000")
	if err != nil {
		t.Fatalf("sweep: %v\n%s", err, out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header, 3 rows and a summary:\n%s", out)
	}
	for i, seed := range []string{"10", "11", "12"} {
		row := strings.Fields(lines[i+1])
		if row[0] != seed || row[4] != "true" {
			t.Fatalf("row %d = %q", i, lines[i+1])
		}
	}
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	return img
}
