package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestParse(t *testing.T) {
	tests := []struct {
		desc    string
		content string
		want    Config
		err     bool
	}{
		{
			desc:    "Empty file gives the defaults",
			content: "",
			want:    Config{Format: "text"},
		},
		{
			desc:    "All fields",
			content: "format: json\nverbose: true\naliases:\n  byte: u8\n  double: f64\n",
			want: Config{
				Format:  "json",
				Verbose: true,
				Aliases: map[string]string{"byte": "u8", "double": "f64"},
			},
		},
		{
			desc:    "Bad format",
			content: "format: xml\n",
			err:     true,
		},
		{
			desc:    "Empty alias target",
			content: "aliases:\n  byte: \"\"\n",
			err:     true,
		},
		{
			desc:    "Not yaml",
			content: "format: [json\n",
			err:     true,
		},
	}

	for _, test := range tests {
		got, err := Parse([]byte(test.content))
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

		if diff := pretty.Compare(test.want, got); diff != "" {
			t.Errorf("TestParse(%s): -want/+got:\n%s", test.desc, diff)
		}
	}
}

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "numy.yaml")
	if err := os.WriteFile(p, []byte("format: json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(p)
	if err != nil {
		t.Fatalf("TestLoad: got err == %s, want err == nil", err)
	}
	if got.Format != "json" {
		t.Errorf("TestLoad: got format %q, want json", got.Format)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("TestLoad(missing file): got err == nil, want err != nil")
	}
}
