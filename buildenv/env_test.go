package buildenv

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestSubstStandardVars(t *testing.T) {
	e := New("/home/dev/proj", "teensy41")

	got, err := e.Subst("$PROJECT_DIR/script/pio")
	if err != nil {
		t.Fatalf("Subst: %v", err)
	}
	if want := "/home/dev/proj/script/pio"; got != want {
		t.Errorf("Subst = %q, want %q", got, want)
	}
}

func TestSubstRecursive(t *testing.T) {
	e := New("/p", "native")

	got, err := e.Subst("$BUILD_DIR")
	if err != nil {
		t.Fatalf("Subst: %v", err)
	}
	if want := "/p/.pio/build/native"; got != want {
		t.Errorf("Subst = %q, want %q", got, want)
	}
}

func TestSubstForms(t *testing.T) {
	e := New("/p", "e")
	e.Set("NAME", "value")

	tests := []struct {
		in   string
		want string
	}{
		{"${NAME}", "value"},
		{"a$NAME-b", "avalue-b"},
		{"${NAME}suffix", "valuesuffix"},
		{"$$NAME", "$NAME"},
		{"no refs", "no refs"},
	}
	for _, tt := range tests {
		got, err := e.Subst(tt.in)
		if err != nil {
			t.Errorf("Subst(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Subst(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSubstUnresolved(t *testing.T) {
	e := New("/p", "e")

	_, err := e.Subst("$NO_SUCH_VAR/x")
	if err == nil {
		t.Fatal("Subst succeeded for undefined variable")
	}
	if !strings.Contains(err.Error(), "NO_SUCH_VAR") {
		t.Errorf("error %q does not name the variable", err)
	}
}

func TestSubstCycle(t *testing.T) {
	e := New("/p", "e")
	e.Set("A", "$B")
	e.Set("B", "$A")

	if _, err := e.Subst("$A"); err == nil {
		t.Fatal("Subst succeeded on cyclic definition")
	}
}

func TestSubstMalformed(t *testing.T) {
	e := New("/p", "e")
	for _, in := range []string{"${}", "${OPEN", "$ x"} {
		if _, err := e.Subst(in); err == nil {
			t.Errorf("Subst(%q) succeeded, want error", in)
		}
	}
}

// An empty project dir is carried through, not special-cased: the join
// still happens and produces a relative path.
func TestEmptyProjectDir(t *testing.T) {
	e := New("", "e")

	dir, err := e.Subst("$PROJECT_DIR")
	if err != nil {
		t.Fatalf("Subst: %v", err)
	}
	if got := filepath.Join(dir, "script/pio"); got != filepath.Join("script", "pio") {
		t.Errorf("join = %q", got)
	}
}

func TestSetOverrides(t *testing.T) {
	e := New("/p", "e")
	e.Set("PROJECT_SRC_DIR", "$PROJECT_DIR/firmware/src")

	got, err := e.Subst("$PROJECT_SRC_DIR")
	if err != nil {
		t.Fatalf("Subst: %v", err)
	}
	if want := "/p/firmware/src"; got != want {
		t.Errorf("Subst = %q, want %q", got, want)
	}
}
