package script

import (
	"strings"
	"testing"

	"github.com/gostdlib/base/context"
	"github.com/kylelemons/godebug/pretty"
)

func TestParse(t *testing.T) {
	tests := []struct {
		desc    string
		content string
		want    []Line
		err     bool
	}{
		{
			desc:    "Empty script",
			content: "",
		},
		{
			desc: "Comments and blank lines",
			content: `// header comment

u8 checked_sub 5 10
   // indented comment
i8 wrapping_neg -128 // trailing
f64 pi
`,
			want: []Line{
				{LineNum: 3, Type: "u8", Op: "checked_sub", Args: []string{"5", "10"}},
				{LineNum: 5, Type: "i8", Op: "wrapping_neg", Args: []string{"-128"}},
				{LineNum: 6, Type: "f64", Op: "pi"},
			},
		},
		{
			desc:    "No trailing newline",
			content: "u16 rotate_left 1 3",
			want: []Line{
				{LineNum: 1, Type: "u16", Op: "rotate_left", Args: []string{"1", "3"}},
			},
		},
		{
			desc:    "Lines are numbered from 1",
			content: "//only\n\nu8 add 1 2\n",
			want: []Line{
				{LineNum: 3, Type: "u8", Op: "add", Args: []string{"1", "2"}},
			},
		},
		{
			desc:    "Comment glued to a word",
			content: "f64 total_cmp 1 nan//c\nu8 not 7// trailing\ni8 abs//-1\n",
			want: []Line{
				{LineNum: 1, Type: "f64", Op: "total_cmp", Args: []string{"1", "nan"}},
				{LineNum: 2, Type: "u8", Op: "not", Args: []string{"7"}},
				{LineNum: 3, Type: "i8", Op: "abs"},
			},
		},
		{
			desc:    "Type with no operation",
			content: "u8 add 1 2\nu8\n",
			err:     true,
		},
	}

	for _, test := range tests {
		got, err := Parse(context.Background(), test.content)
		switch {
		case err == nil && test.err:
			t.Errorf("TestParse(%s): got err == nil, want err != nil", test.desc)
			continue
		case err != nil && !test.err:
			t.Errorf("TestParse(%s): got err == %s, want err == nil", test.desc, err)
			continue
		case err != nil:
			continue
		}

		if diff := pretty.Compare(test.want, got.Lines); diff != "" {
			t.Errorf("TestParse(%s): -want/+got:\n%s", test.desc, diff)
		}
	}
}

func TestParseErrorLine(t *testing.T) {
	_, err := Parse(context.Background(), "u8 add 1 2\n\nu8\n")
	if err == nil {
		t.Fatalf("TestParseErrorLine: got err == nil, want err != nil")
	}
	if !strings.Contains(err.Error(), "[Line 3]") {
		t.Errorf("TestParseErrorLine: got %q, want it to name [Line 3]", err)
	}
}

func TestParseBytes(t *testing.T) {
	got, err := ParseBytes(context.Background(), []byte("u8 count_ones 255\n"))
	if err != nil {
		t.Fatalf("TestParseBytes: got err == %s, want err == nil", err)
	}
	if len(got.Lines) != 1 || got.Lines[0].Op != "count_ones" {
		t.Errorf("TestParseBytes: got %+v", got.Lines)
	}
}
