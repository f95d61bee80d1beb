package domain

import "filecredit/pkg/docutil"

// FileRecord is the scored result for one scanned file.
type FileRecord struct {
	Path    string
	Name    string
	Kind    docutil.Kind
	Size    int64
	Pages   int
	A4Pages int
	Score   int
}

// Totals aggregates a group of records.
type Totals struct {
	Count   int
	Size    int64
	Pages   int
	A4Pages int
	Score   int
}

func (t *Totals) Add(r FileRecord) {
	t.Count++
	t.Size += r.Size
	t.Pages += r.Pages
	t.A4Pages += r.A4Pages
	t.Score += r.Score
}

// Skipped is a file or directory left out of the scan.
type Skipped struct {
	Path   string
	Reason error
}

type ScanResult struct {
	Root    string
	Records []FileRecord
	ByKind  map[docutil.Kind]Totals
	Total   Totals
	Skipped []Skipped
}

// NewScanResult builds a result and its aggregates from records.
func NewScanResult(root string, records []FileRecord, skipped []Skipped) ScanResult {
	res := ScanResult{
		Root:    root,
		Records: records,
		ByKind:  make(map[docutil.Kind]Totals),
		Skipped: skipped,
	}
	for _, r := range records {
		t := res.ByKind[r.Kind]
		t.Add(r)
		res.ByKind[r.Kind] = t
		res.Total.Add(r)
	}
	return res
}

// Kinds returns the kinds present in the result, in report order.
func (s ScanResult) Kinds() []docutil.Kind {
	kinds := make([]docutil.Kind, 0, len(docutil.Kinds))
	for _, k := range docutil.Kinds {
		if _, ok := s.ByKind[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
