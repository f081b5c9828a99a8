package cli

import (
	"reflect"
	"testing"

	"github.com/matzehuels/boxgrid/pkg/box"
)

func TestSplitRows(t *testing.T) {
	tests := []struct {
		name string
		text string
		sep  string
		want [][]string
	}{
		{
			name: "tab separated",
			text: "a\tb\nc\td\n",
			sep:  "\t",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "no trailing newline",
			text: "a,b",
			sep:  ",",
			want: [][]string{{"a", "b"}},
		},
		{
			name: "ragged rows",
			text: "a\tb\tc\nd\n",
			sep:  "\t",
			want: [][]string{{"a", "b", "c"}, {"d"}},
		},
		{
			name: "single cell",
			text: "a\n",
			sep:  "\t",
			want: [][]string{{"a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitRows(tt.text, tt.sep)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitRows(%q, %q) = %v, want %v", tt.text, tt.sep, got, tt.want)
			}
		})
	}
}

func TestBuildTable(t *testing.T) {
	rows := [][]string{
		{"name", "age"},
		{"ada", "36"},
		{"bo", "7"},
	}

	b := buildTable(box.Right, 2, rows)
	if b.Rows() != 3 || b.Cols() != 9 {
		t.Fatalf("buildTable() size = %dx%d, want 3x9", b.Rows(), b.Cols())
	}

	want := "name  age\n ada   36\n  bo    7\n"
	if got := box.Render(b); got != want {
		t.Errorf("buildTable() rendered %q, want %q", got, want)
	}
}

func TestBuildTablePadsShortRows(t *testing.T) {
	rows := [][]string{
		{"a", "b", "c"},
		{"d"},
	}

	b := buildTable(box.Left, 1, rows)
	if b.Rows() != 2 || b.Cols() != 5 {
		t.Fatalf("buildTable() size = %dx%d, want 2x5", b.Rows(), b.Cols())
	}

	want := "a b c\nd    \n"
	if got := box.Render(b); got != want {
		t.Errorf("buildTable() rendered %q, want %q", got, want)
	}
}
