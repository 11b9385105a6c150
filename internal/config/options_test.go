package config

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseOptions(t *testing.T) {
	in := "-hs120\n\n  -piece3  \nnot an option\n-hs7\n"
	opts, err := ParseOptions(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseOptions() error = %v", err)
	}
	want := []string{"-hs120", "-piece3", "-hs7"}
	if !reflect.DeepEqual(opts, want) {
		t.Errorf("ParseOptions() = %q, expected %q", opts, want)
	}
}

func TestIntOption(t *testing.T) {
	tests := []struct {
		name  string
		opts  []string
		opt   string
		want  int
		found bool
	}{
		{"absent", []string{"-piece2"}, OptHighScore, 0, false},
		{"last wins", []string{"-hs10", "-hs20"}, OptHighScore, 20, true},
		{"trailing garbage", []string{"-hs42abc"}, OptHighScore, 42, true},
		{"no digits", []string{"-piece"}, OptPiece, 0, true},
		{"negative", []string{"-piece-1"}, OptPiece, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := IntOption(tt.opts, tt.opt)
			if got != tt.want || found != tt.found {
				t.Errorf("IntOption() = %d, %v, expected %d, %v", got, found, tt.want, tt.found)
			}
		})
	}
}

func TestOptionFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "otitame.cfg")

	opts, err := ReadOptionFile(path)
	if err != nil || opts != nil {
		t.Fatalf("ReadOptionFile(missing) = %v, %v, expected nil, nil", opts, err)
	}

	written := []string{FormatInt(OptHighScore, 1234), FormatInt(OptPiece, 2)}
	if err := WriteOptionFile(path, written); err != nil {
		t.Fatalf("WriteOptionFile() error = %v", err)
	}
	opts, err = ReadOptionFile(path)
	if err != nil {
		t.Fatalf("ReadOptionFile() error = %v", err)
	}
	if !reflect.DeepEqual(opts, []string{"-hs1234", "-piece2"}) {
		t.Errorf("ReadOptionFile() = %q", opts)
	}
}

func TestSplitLegacyArgs(t *testing.T) {
	args := []string{"play", "-hs100", "otitame", "--backend", "pc98", "-piece3", "-h", "--hs5"}
	legacy, rest := SplitLegacyArgs(args, OptHighScore, OptPiece)
	if want := []string{"-hs100", "-piece3"}; !reflect.DeepEqual(legacy, want) {
		t.Errorf("legacy = %q, expected %q", legacy, want)
	}
	if want := []string{"play", "otitame", "--backend", "pc98", "-h", "--hs5"}; !reflect.DeepEqual(rest, want) {
		t.Errorf("rest = %q, expected %q", rest, want)
	}
}
