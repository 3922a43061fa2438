package buildenv

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// maxSubstDepth bounds recursive placeholder expansion so that
// self-referential variables fail instead of looping.
const maxSubstDepth = 16

// Env is the build environment object handed to pre-build hooks.
// It carries the project root, the active environment name and a
// variable table with placeholder substitution, and is passed through
// to hooks unmodified.
type Env struct {
	vars map[string]string

	stdout io.Writer
	stderr io.Writer
}

// New creates an Env for a project rooted at projectDir with the given
// environment name. projectDir is stored as-is: an empty or malformed
// value is not special-cased here and surfaces later as a loud
// resolution or lookup failure.
func New(projectDir, envName string) *Env {
	e := &Env{vars: make(map[string]string)}
	e.Set("PROJECT_DIR", projectDir)
	e.Set("PIOENV", envName)
	e.Set("PROJECT_SRC_DIR", "$PROJECT_DIR/src")
	e.Set("PROJECT_INCLUDE_DIR", "$PROJECT_DIR/include")
	e.Set("BUILD_DIR", "$PROJECT_DIR/.pio/build/$PIOENV")
	return e
}

// Set defines or overrides a variable. Values may reference other
// variables with $NAME or ${NAME}; they are resolved lazily by Subst.
func (e *Env) Set(key, value string) {
	e.vars[key] = value
}

// Get returns the raw, unsubstituted value of a variable.
func (e *Env) Get(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// Names returns all defined variable names, sorted.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for k := range e.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ProjectDir returns the project root exactly as configured.
func (e *Env) ProjectDir() string {
	return e.vars["PROJECT_DIR"]
}

// EnvName returns the active environment name.
func (e *Env) EnvName() string {
	return e.vars["PIOENV"]
}

// Subst resolves $NAME and ${NAME} placeholders in s against the
// variable table, recursively. "$$" yields a literal "$". An undefined
// variable or a substitution cycle is an error; there is no fallback.
func (e *Env) Subst(s string) (string, error) {
	return e.expand(s, 0)
}

func (e *Env) expand(s string, depth int) (string, error) {
	if depth > maxSubstDepth {
		return "", fmt.Errorf("substitution cycle while expanding %q", s)
	}
	var out []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '$' {
			out = append(out, c)
			continue
		}
		if i+1 < len(s) && s[i+1] == '$' {
			out = append(out, '$')
			i++
			continue
		}
		name, next, err := parseVarRef(s, i+1)
		if err != nil {
			return "", err
		}
		value, ok := e.vars[name]
		if !ok {
			return "", fmt.Errorf("unresolved variable $%s in %q", name, s)
		}
		expanded, err := e.expand(value, depth+1)
		if err != nil {
			return "", err
		}
		out = append(out, expanded...)
		i = next - 1
	}
	return string(out), nil
}

// parseVarRef parses a variable reference starting at s[i] (just past
// the '$') and returns the name and the index of the first byte after
// the reference.
func parseVarRef(s string, i int) (name string, next int, err error) {
	if i < len(s) && s[i] == '{' {
		for j := i + 1; j < len(s); j++ {
			if s[j] == '}' {
				if j == i+1 {
					return "", 0, fmt.Errorf("empty variable reference in %q", s)
				}
				return s[i+1 : j], j + 1, nil
			}
		}
		return "", 0, fmt.Errorf("unterminated variable reference in %q", s)
	}
	j := i
	for j < len(s) && isVarByte(s[j]) {
		j++
	}
	if j == i {
		return "", 0, fmt.Errorf("malformed variable reference in %q", s)
	}
	return s[i:j], j, nil
}

func isVarByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

// SetStdout redirects hook output. The default is os.Stdout.
func (e *Env) SetStdout(w io.Writer) {
	e.stdout = w
}

// SetStderr redirects hook error output. The default is os.Stderr.
func (e *Env) SetStderr(w io.Writer) {
	e.stderr = w
}

// Stdout returns the writer hooks should use for output.
func (e *Env) Stdout() io.Writer {
	if e.stdout == nil {
		return os.Stdout
	}
	return e.stdout
}

// Stderr returns the writer hooks should use for error output.
func (e *Env) Stderr() io.Writer {
	if e.stderr == nil {
		return os.Stderr
	}
	return e.stderr
}
