package report

import "github.com/xuri/excelize/v2"

const headerFill = "4472C4"

type styles struct {
	header         int
	text           int
	number         int
	total          int
	totalNumber    int
	highlightLabel int
	highlightValue int
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

func newStyles(book *excelize.File) (styles, error) {
	var s styles

	left := &excelize.Alignment{Horizontal: "left", Vertical: "center"}
	right := &excelize.Alignment{Horizontal: "right", Vertical: "center"}

	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.header, &excelize.Style{
			Font:      &excelize.Font{Size: 11, Bold: true, Color: "FFFFFF"},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorder(),
		}},
		{&s.text, &excelize.Style{Alignment: left, Border: thinBorder()}},
		{&s.number, &excelize.Style{Alignment: right, Border: thinBorder()}},
		{&s.total, &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: left,
			Border:    thinBorder(),
		}},
		{&s.totalNumber, &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: right,
			Border:    thinBorder(),
		}},
		{&s.highlightLabel, &excelize.Style{Font: &excelize.Font{Size: 12, Bold: true}}},
		{&s.highlightValue, &excelize.Style{
			Font:      &excelize.Font{Size: 12, Bold: true, Color: "FF0000"},
			Alignment: right,
		}},
	}

	for _, d := range defs {
		id, err := book.NewStyle(d.style)
		if err != nil {
			return s, err
		}
		*d.dst = id
	}
	return s, nil
}
