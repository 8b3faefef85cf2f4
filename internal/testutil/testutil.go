// Package testutil holds helpers shared by hourclock tests.
package testutil

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/hourclock/internal/models"
	"github.com/ayoisaiah/hourclock/internal/osutil"
)

type GoldenTest interface {
	Output() ([]byte, string)
}

// Golden is a GoldenTest backed by a captured snapshot.
type Golden struct {
	Name     string
	Snapshot []byte
}

func (g Golden) Output() (out []byte, name string) {
	return g.Snapshot, g.Name
}

// CompareGoldenFile verifies that the output of an operation matches
// the expected output.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: need to sort out line endings
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	snap, golden := tc.Output()

	if snap != nil {
		g.Assert(t, golden, snap)
		return
	}

	f := filepath.Join("testdata", golden+".golden")
	if _, err := os.Stat(f); err == nil || errors.Is(err, os.ErrExist) {
		t.Fatalf("expected no output, but golden file exists: %s", f)
	}
}

// CopyFile copies src to dst.
func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SampleSegments returns the fixed segment list used across package tests.
func SampleSegments() []models.Segment {
	return []models.Segment{
		{ID: "seg-1", Label: "Show Segment", StartSeconds: 0, Duration: 840, Color: "#60a5fa"},
		{ID: "seg-2", Label: "Commercial", StartSeconds: 840, Duration: 900, Color: "#fbbf24"},
		{ID: "seg-3", Label: "Network Break", StartSeconds: 1740, Duration: 900, Color: "#9333ea"},
		{ID: "seg-4", Label: "News, Weather", StartSeconds: 2640, Duration: 960, Color: "#10b981"},
	}
}
