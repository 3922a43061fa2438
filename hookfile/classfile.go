package hookfile

import (
	"github.com/qiniu/x/gsh"

	"github.com/opencontrol/prebuild/buildenv"
)

const GopPackage = true

// -----------------------------------------------------------------------------

// HookF represents a pre-build helper script. A script file named
// "{Name}_hook.gox" defines one HookF class; the runner loads it from
// the hook search path and fires its events.
type HookF struct {
	gsh.App

	fOnPreBuild func(env *buildenv.Env, out *Result)

	name       string
	minVersion string
}

func (p *HookF) app() *gsh.App {
	return &p.App
}

// Name sets the hook name this script serves. Defaults to the script
// file's class name.
func (p *HookF) Name(name string) {
	p.name = name
}

// MinVersion declares the minimum prebuild tool version (semver) the
// script requires. Loading fails when the running tool is older.
func (p *HookF) MinVersion(ver string) {
	p.minVersion = ver
}

// OnPreBuild event fires once per build at the pre-build phase. env is
// the build environment object, passed through unmodified; out
// collects errors.
func (p *HookF) OnPreBuild(f func(env *buildenv.Env, out *Result)) {
	p.fOnPreBuild = f
}

// -----------------------------------------------------------------------------

// Result collects the outcome of a hook invocation.
type Result struct {
	errs []error
}

// AddErr records a hook error.
func (r *Result) AddErr(err error) {
	r.errs = append(r.errs, err)
}

// Errs returns all errors collected during the invocation.
func (r *Result) Errs() []error {
	return r.errs
}

// -----------------------------------------------------------------------------

// Gopt_HookF_Main is main entry of this classfile.
func Gopt_HookF_Main(this interface {
	app() *gsh.App
	MainEntry()
}) {
	this.MainEntry()
	gsh.InitApp(this.app())
}
