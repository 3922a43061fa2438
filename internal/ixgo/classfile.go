package ixgo

import (
	"github.com/goplus/ixgo/xgobuild"
	"github.com/goplus/mod/modfile"
)

func init() {
	xgobuild.RegisterProject(&modfile.Project{
		Ext:   "_hook.gox",
		Class: "HookF",
		PkgPaths: []string{
			"github.com/opencontrol/prebuild/hookfile",
		},
		Import: []*modfile.Import{
			{
				Name: "compiledb",
				Path: "github.com/opencontrol/prebuild/pkgs/compiledb",
			},
			{
				Name: "semver",
				Path: "golang.org/x/mod/semver",
			},
		},
	})
}
