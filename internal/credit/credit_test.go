package credit

import "testing"

var (
	a4Portrait  = Dim{Width: 595.28, Height: 841.89}
	a4Rounded   = Dim{Width: 595, Height: 842}
	a4Landscape = Dim{Width: 841.89, Height: 595.28}
	a3          = Dim{Width: 841.89, Height: 1190.55}
	eightA4     = Dim{Width: 1190.55, Height: 3367.56}
	letter      = Dim{Width: 612, Height: 792}
	a5          = Dim{Width: 419.53, Height: 595.28}
)

func TestPageA4(t *testing.T) {
	cases := []struct {
		name string
		dim  Dim
		want int
	}{
		{"a4 portrait", a4Portrait, 1},
		{"a4 rounded points", a4Rounded, 1},
		{"a4 landscape", a4Landscape, 1},
		{"a5", a5, 1},
		{"letter", letter, 1},
		{"a3", a3, 2},
		{"four a4", Dim{Width: 1190.55, Height: 1683.78}, 4},
		{"eight a4", eightA4, 8},
		{"a1 iso", Dim{Width: 1683.78, Height: 2383.94}, 9},
		{"a4 plus 0.4 percent", Dim{Width: a4Portrait.Width * 1.004, Height: a4Portrait.Height}, 2},
		{"a3 plus 0.3 percent", Dim{Width: a4Portrait.Width * 2.003, Height: a4Portrait.Height}, 3},
		{"zero", Dim{}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PageA4(tc.dim); got != tc.want {
				t.Errorf("PageA4(%v) = %d, want %d", tc.dim, got, tc.want)
			}
		})
	}
}

func TestPageA4Monotonic(t *testing.T) {
	prev := 0
	for scale := 0.5; scale <= 6; scale += 0.05 {
		d := Dim{Width: a4Portrait.Width * scale, Height: a4Portrait.Height}
		got := PageA4(d)
		if got < prev {
			t.Fatalf("A4 count decreased at scale %.2f: %d < %d", scale, got, prev)
		}
		prev = got
	}
}

func TestScore(t *testing.T) {
	cases := []struct {
		a4   int
		want int
	}{
		{0, 10},
		{1, 10},
		{3, 10},
		{4, 13},
		{5, 16},
		{16, 49},
		{100, 301},
	}

	for _, tc := range cases {
		if got := Score(tc.a4); got != tc.want {
			t.Errorf("Score(%d) = %d, want %d", tc.a4, got, tc.want)
		}
	}
}

func TestDrawingScoreFollowsFormula(t *testing.T) {
	if DrawingScore != 49 {
		t.Fatalf("DrawingScore = %d, want 49", DrawingScore)
	}
	if DrawingScore != Score(DrawingPages) {
		t.Fatalf("DrawingScore %d diverged from Score(%d) = %d", DrawingScore, DrawingPages, Score(DrawingPages))
	}

	r := ForDrawing()
	if r.Pages != 16 || r.A4Pages != 16 || r.Score != 49 {
		t.Fatalf("unexpected drawing result: %+v", r)
	}
}

func TestForPDF(t *testing.T) {
	t.Run("single a4", func(t *testing.T) {
		r := ForPDF([]Dim{a4Portrait})
		if r.Pages != 1 || r.A4Pages != 1 || r.Score != 10 {
			t.Fatalf("unexpected result: %+v", r)
		}
	})

	t.Run("five a4", func(t *testing.T) {
		dims := []Dim{a4Portrait, a4Portrait, a4Portrait, a4Portrait, a4Portrait}
		r := ForPDF(dims)
		if r.Pages != 5 || r.A4Pages != 5 || r.Score != 16 {
			t.Fatalf("unexpected result: %+v", r)
		}
	})

	t.Run("oversized page", func(t *testing.T) {
		r := ForPDF([]Dim{{Width: 1190.55, Height: 1683.78}})
		if r.Pages != 1 || r.A4Pages != 4 || r.Score != 13 {
			t.Fatalf("unexpected result: %+v", r)
		}
	})

	t.Run("mixed", func(t *testing.T) {
		r := ForPDF([]Dim{a4Portrait, a3, eightA4})
		if r.Pages != 3 || r.A4Pages != 11 || r.Score != 34 {
			t.Fatalf("unexpected result: %+v", r)
		}
	})
}
