// Package pdftest builds minimal PDF documents for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"filecredit/internal/credit"
)

var (
	A4 = credit.Dim{Width: 595.28, Height: 841.89}
	A3 = credit.Dim{Width: 841.89, Height: 1190.55}
	// A4x4 has exactly four times the area of A4.
	A4x4 = credit.Dim{Width: 1190.55, Height: 1683.78}
)

// Build returns a well-formed PDF with one empty page per dim.
func Build(pages ...credit.Dim) []byte {
	var buf bytes.Buffer
	var offsets []int

	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")
	obj("<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))

	for _, p := range pages {
		obj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] /Resources << >> >>", p.Width, p.Height))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return buf.Bytes()
}

// Pages repeats dim n times.
func Pages(dim credit.Dim, n int) []credit.Dim {
	out := make([]credit.Dim, n)
	for i := range out {
		out[i] = dim
	}
	return out
}

// Write stores a built PDF at path in fsys.
func Write(fsys afero.Fs, path string, pages ...credit.Dim) error {
	return afero.WriteFile(fsys, path, Build(pages...), 0o644)
}

// Corrupt is a file that starts like a PDF but has no parsable body.
var Corrupt = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog\nthis is not a pdf\n")
