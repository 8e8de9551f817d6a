package main

import (
	"github.com/michaelfm1211/gofinch/pkg/cli/sh"

	_ "github.com/michaelfm1211/gofinch/pkg/cli/cmds/all"
)

//go-build: CGO_ENABLED=0

func main() {
	sh.Main()
}
