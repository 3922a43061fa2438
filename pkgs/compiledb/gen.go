package compiledb

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/opencontrol/prebuild/buildenv"
)

// Generator composes one compiler invocation per translation unit
// found under the project's source directories.
type Generator struct {
	ProjectDir  string
	BuildDir    string
	CC          string // C compiler driver
	CXX         string // C++ compiler driver
	Flags       []string
	IncludeDirs []string
	SrcDirs     []string
}

// NewGenerator builds a Generator from the build environment. All
// directory variables are resolved through the environment's
// substitution mechanism; an unresolved variable is an error.
func NewGenerator(env *buildenv.Env) (*Generator, error) {
	g := &Generator{CC: "gcc", CXX: "g++"}

	var err error
	if g.ProjectDir, err = env.Subst("$PROJECT_DIR"); err != nil {
		return nil, err
	}
	if g.BuildDir, err = env.Subst("$BUILD_DIR"); err != nil {
		return nil, err
	}
	srcDir, err := env.Subst("$PROJECT_SRC_DIR")
	if err != nil {
		return nil, err
	}
	g.SrcDirs = []string{srcDir}

	includeDir, err := env.Subst("$PROJECT_INCLUDE_DIR")
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(includeDir); statErr == nil {
		g.IncludeDirs = []string{includeDir}
	}

	for key, dst := range map[string]*string{"CC": &g.CC, "CXX": &g.CXX} {
		if raw, ok := env.Get(key); ok {
			v, err := env.Subst(raw)
			if err != nil {
				return nil, err
			}
			*dst = v
		}
	}
	if raw, ok := env.Get("BUILD_FLAGS"); ok {
		v, err := env.Subst(raw)
		if err != nil {
			return nil, err
		}
		g.Flags = strings.Fields(v)
	}
	return g, nil
}

// Generate walks the source directories and returns a database with
// one entry per C/C++ translation unit, sorted by file path.
func (g *Generator) Generate() (Database, error) {
	var db Database
	for _, srcDir := range g.SrcDirs {
		err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			compiler, ok := g.compilerFor(path)
			if !ok {
				return nil
			}
			db = append(db, g.command(compiler, path))
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", srcDir, err)
		}
	}
	sort.Slice(db, func(i, j int) bool { return db[i].File < db[j].File })
	return db, nil
}

// compilerFor picks the compiler driver for a source file, or reports
// that the file is not a translation unit.
func (g *Generator) compilerFor(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".c":
		return g.CC, true
	case ".cpp", ".cc", ".cxx", ".ino":
		return g.CXX, true
	}
	return "", false
}

func (g *Generator) command(compiler, file string) Command {
	rel := g.relToProject(file)
	obj := filepath.Join(g.BuildDir, rel+".o")

	args := make([]string, 0, len(g.Flags)+len(g.IncludeDirs)+5)
	args = append(args, compiler)
	args = append(args, g.Flags...)
	for _, dir := range g.IncludeDirs {
		args = append(args, "-I"+g.relToProject(dir))
	}
	args = append(args, "-c", rel, "-o", obj)

	return Command{
		Directory: g.ProjectDir,
		File:      rel,
		Arguments: args,
		Output:    obj,
	}
}

// relToProject makes a path relative to the project dir when it is
// inside it; paths outside stay as given.
func (g *Generator) relToProject(path string) string {
	rel, err := filepath.Rel(g.ProjectDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
