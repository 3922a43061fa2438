// Package pio wraps the PlatformIO CLI.
package pio

import (
	"io"
	"os"
	"os/exec"
)

// PIO drives the host build tool for a single project.
type PIO struct {
	bin        string
	projectDir string
	stdout     io.Writer
	stderr     io.Writer
}

// New returns a ready-to-use PIO for the project at projectDir.
func New(projectDir string) *PIO {
	return &PIO{bin: "pio", projectDir: projectDir}
}

// Bin overrides the PlatformIO executable (default "pio").
func (p *PIO) Bin(path string) { p.bin = path }

// SetStdout redirects subprocess output. The default is os.Stdout.
func (p *PIO) SetStdout(w io.Writer) { p.stdout = w }

// SetStderr redirects subprocess error output. The default is os.Stderr.
func (p *PIO) SetStderr(w io.Writer) { p.stderr = w }

// Run runs "pio run" with the given target and environment; empty
// values are omitted. Extra args are appended at the end.
func (p *PIO) Run(target, environment string, args ...string) error {
	pioArgs := []string{"run", "-d", p.projectDir}
	if target != "" {
		pioArgs = append(pioArgs, "-t", target)
	}
	if environment != "" {
		pioArgs = append(pioArgs, "-e", environment)
	}
	pioArgs = append(pioArgs, args...)
	return p.run(pioArgs)
}

// CompileDB runs the build tool's own compilation database target,
// "pio run -t compiledb".
func (p *PIO) CompileDB(environment string) error {
	return p.Run("compiledb", environment)
}

func (p *PIO) run(args []string) error {
	cmd := exec.Command(p.bin, args...)
	cmd.Stdout = p.stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = p.stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}
