package box

import "testing"

func TestAlignmentSplit(t *testing.T) {
	tests := []struct {
		name    string
		align   Alignment
		n       int
		wantRev int
		wantFwd int
	}{
		{name: "first puts everything forward", align: AlignFirst, n: 5, wantRev: 0, wantFwd: 5},
		{name: "last puts everything leading", align: AlignLast, n: 5, wantRev: 5, wantFwd: 0},
		{name: "center1 odd biases leading", align: AlignCenter1, n: 5, wantRev: 3, wantFwd: 2},
		{name: "center2 odd biases trailing", align: AlignCenter2, n: 5, wantRev: 2, wantFwd: 3},
		{name: "center1 even splits evenly", align: AlignCenter1, n: 4, wantRev: 2, wantFwd: 2},
		{name: "center2 even splits evenly", align: AlignCenter2, n: 4, wantRev: 2, wantFwd: 2},
		{name: "zero", align: AlignCenter1, n: 0, wantRev: 0, wantFwd: 0},
		{name: "one cell center1", align: AlignCenter1, n: 1, wantRev: 1, wantFwd: 0},
		{name: "one cell center2", align: AlignCenter2, n: 1, wantRev: 0, wantFwd: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.align.rev(tt.n); got != tt.wantRev {
				t.Errorf("rev(%d) = %v, want %v", tt.n, got, tt.wantRev)
			}
			if got := tt.align.fwd(tt.n); got != tt.wantFwd {
				t.Errorf("fwd(%d) = %v, want %v", tt.n, got, tt.wantFwd)
			}
		})
	}
}

func TestAlignmentSplitPartitions(t *testing.T) {
	// rev and fwd must partition n exactly for every alignment.
	aligns := []Alignment{AlignFirst, AlignCenter1, AlignCenter2, AlignLast}
	for _, a := range aligns {
		for n := 0; n <= 9; n++ {
			if a.rev(n)+a.fwd(n) != n {
				t.Errorf("%v: rev(%d)+fwd(%d) = %d, want %d", a, n, n, a.rev(n)+a.fwd(n), n)
			}
		}
	}
}

func TestAlignmentString(t *testing.T) {
	tests := []struct {
		align Alignment
		want  string
	}{
		{AlignFirst, "first"},
		{AlignCenter1, "center1"},
		{AlignCenter2, "center2"},
		{AlignLast, "last"},
		{Alignment(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.align.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Alignment
		wantOK bool
	}{
		{name: "first", input: "first", want: AlignFirst, wantOK: true},
		{name: "top alias", input: "top", want: AlignFirst, wantOK: true},
		{name: "left alias", input: "left", want: AlignFirst, wantOK: true},
		{name: "last", input: "last", want: AlignLast, wantOK: true},
		{name: "bottom alias", input: "bottom", want: AlignLast, wantOK: true},
		{name: "right alias", input: "right", want: AlignLast, wantOK: true},
		{name: "center defaults to center1", input: "center", want: AlignCenter1, wantOK: true},
		{name: "center2", input: "center2", want: AlignCenter2, wantOK: true},
		{name: "unknown", input: "middle", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAlignment(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseAlignment(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseAlignment(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
