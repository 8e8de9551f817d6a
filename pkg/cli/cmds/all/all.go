// Package all imports all command packages.
package all

import (
	_ "github.com/michaelfm1211/gofinch/pkg/cli/cmds/motion"
	_ "github.com/michaelfm1211/gofinch/pkg/cli/cmds/outputs"
	_ "github.com/michaelfm1211/gofinch/pkg/cli/cmds/sense"
)
