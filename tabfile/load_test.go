package tabfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTab(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.tab")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOK(t *testing.T) {
	seq, err := Load(writeTab(t, "2\n(a->b)\na\nb\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(seq.Premises) != 2 {
		t.Fatalf("got %d premises, want 2", len(seq.Premises))
	}
	if got := seq.Premises[0].String(); got != "(a->b)" {
		t.Errorf("premise 1 is %q", got)
	}
	if got := seq.Conclusion.String(); got != "b" {
		t.Errorf("conclusion is %q", got)
	}
}

func TestLoadNoPremises(t *testing.T) {
	seq, err := Load(writeTab(t, "0\n(a|¬a)\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(seq.Premises) != 0 {
		t.Fatalf("got %d premises, want 0", len(seq.Premises))
	}
	if got := seq.Conclusion.String(); got != "(a|¬a)" {
		t.Errorf("conclusion is %q", got)
	}
}

// Lines between the last premise and the conclusion are ignored.
func TestLoadIgnoredLines(t *testing.T) {
	seq, err := Load(writeTab(t, "1\n(a&b)\nthis line is ignored\nanother one\n(a|c)\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := seq.Premises[0].String(); got != "(a&b)" {
		t.Errorf("premise is %q", got)
	}
	if got := seq.Conclusion.String(); got != "(a|c)" {
		t.Errorf("conclusion is %q", got)
	}
}

func TestLoadTrailingWhitespace(t *testing.T) {
	seq, err := Load(writeTab(t, "1\r\n(a->b)  \r\na\t\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := seq.Premises[0].String(); got != "(a->b)" {
		t.Errorf("premise is %q", got)
	}
}

func TestLoadErr(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"bad header", "two\na\nb\n"},
		{"negative header", "-1\na\n"},
		{"too few lines", "2\n(a->b)\nb\n"},
		{"bad premise", "1\n(a->\nb\n"},
		{"bad conclusion", "1\na\n(b|\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTab(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.tab"))
	if !errors.Is(err, ErrInput) {
		t.Fatalf("error %v does not wrap ErrInput", err)
	}
}

func TestLint(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		count int
		lines []int
	}{
		{"clean", "1\n(a->b)\nb\n", 0, nil},
		{"bad header", "x\na\n", 1, []int{0}},
		{"bad premise", "1\n(a->\nb\n", 1, []int{1}},
		{"bad premise and conclusion", "1\n(a->\n(b|\n", 2, []int{1, 2}},
		{"short file", "3\na\nb\n", 1, []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := Lint([]byte(tt.in))
			if len(issues) != tt.count {
				t.Fatalf("got %d issues %v, want %d", len(issues), issues, tt.count)
			}
			for i, issue := range issues {
				if issue.Line != tt.lines[i] {
					t.Errorf("issue %d on line %d, want %d", i, issue.Line, tt.lines[i])
				}
			}
		})
	}
}
