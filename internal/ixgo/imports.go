package ixgo

import (
	// register the packages hook scripts may import with the interpreter
	_ "github.com/opencontrol/prebuild/internal/ixgo/pkg/github.com/opencontrol/prebuild/buildenv"
	_ "github.com/opencontrol/prebuild/internal/ixgo/pkg/github.com/opencontrol/prebuild/hookfile"
	_ "github.com/opencontrol/prebuild/internal/ixgo/pkg/github.com/opencontrol/prebuild/pkgs/compiledb"
	_ "github.com/opencontrol/prebuild/internal/ixgo/pkg/github.com/qiniu/x/gsh"
	_ "github.com/opencontrol/prebuild/internal/ixgo/pkg/golang.org/x/mod/semver"
)
