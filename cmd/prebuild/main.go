package main

import (
	"github.com/opencontrol/prebuild/cmd/prebuild/internal"
)

func main() {
	internal.Execute()
}
