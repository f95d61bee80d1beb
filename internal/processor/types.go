package processor

import (
	"github.com/spf13/afero"

	"filecredit/internal/measure"
	"filecredit/pkg/docutil"
)

// Measurer reads the geometry of one candidate file.
type Measurer interface {
	Measure(path string, kind docutil.Kind) (measure.Measurement, error)
}

type Options struct {
	// Fs defaults to the OS filesystem.
	Fs afero.Fs
	// Measurer defaults to measure.New(Fs).
	Measurer Measurer
}

type Job struct {
	Path string
	Name string
	Kind docutil.Kind
	Size int64
}

type ProgressUpdate struct {
	FoundDelta   int
	ScannedDelta int
	SkippedDelta int
	ScoreDelta   int
	Current      string
}
