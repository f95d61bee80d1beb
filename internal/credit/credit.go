// Package credit converts page geometry into A4-equivalent page counts and
// credit scores.
package credit

import "math"

const (
	// A4WidthMM and A4HeightMM are the reference sheet dimensions.
	A4WidthMM  = 210.0
	A4HeightMM = 297.0
	A4AreaMM2  = A4WidthMM * A4HeightMM

	mmPerPoint = 25.4 / 72

	// a4Tolerance absorbs the point-grid error of pages that are nominally a
	// whole number of A4 sheets.
	a4Tolerance = 1e-3

	BaseScore    = 10
	BasePages    = 3
	PerPageScore = 3

	// DrawingPages is the flat page count charged for DGN and DWG files.
	DrawingPages = 16
	// DrawingScore is Score(DrawingPages), kept as a constant expression so it
	// follows the PDF formula.
	DrawingScore = BaseScore + PerPageScore*(DrawingPages-BasePages)
)

// Dim is a page size in PDF points.
type Dim struct {
	Width  float64
	Height float64
}

// AreaMM2 returns the page area in square millimetres.
func (d Dim) AreaMM2() float64 {
	return math.Abs(d.Width*mmPerPoint) * math.Abs(d.Height*mmPerPoint)
}

// PageA4 returns the A4-equivalent count of a single page: the area ratio to
// A4 rounded up, never less than one. Ratios within a4Tolerance above a whole
// number round down to it.
func PageA4(d Dim) int {
	n := int(math.Ceil(d.AreaMM2()/A4AreaMM2 - a4Tolerance))
	if n < 1 {
		return 1
	}
	return n
}

// A4Pages sums PageA4 over dims.
func A4Pages(dims []Dim) int {
	total := 0
	for _, d := range dims {
		total += PageA4(d)
	}
	return total
}

// Score applies the credit rule to an A4-equivalent page count.
func Score(a4Pages int) int {
	extra := a4Pages - BasePages
	if extra < 0 {
		extra = 0
	}
	return BaseScore + PerPageScore*extra
}

// Result is the outcome of scoring one file.
type Result struct {
	Pages   int
	A4Pages int
	Score   int
}

// ForPDF scores a PDF from its page dimensions.
func ForPDF(dims []Dim) Result {
	a4 := A4Pages(dims)
	return Result{Pages: len(dims), A4Pages: a4, Score: Score(a4)}
}

// ForDrawing returns the fixed result charged for DGN and DWG files.
func ForDrawing() Result {
	return Result{Pages: DrawingPages, A4Pages: DrawingPages, Score: DrawingScore}
}
