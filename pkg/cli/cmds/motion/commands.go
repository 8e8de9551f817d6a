// Package motion provides wheel control commands.
package motion

import (
	"fmt"
	"strconv"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/michaelfm1211/gofinch/pkg/cli/sh"
)

func speedArg(c *ishell.Context, n int) (uint8, error) {
	val, err := strconv.ParseUint(c.Args[n], 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid speed %q: %v", c.Args[n], err)
	}
	return uint8(val), nil
}

var (
	// DriveCmd sets both wheel speeds.
	DriveCmd = ishell.Cmd{
		Name:    "drive",
		Aliases: []string{"mv"},
		Help:    "LEFT(0-255) RIGHT(0-255)",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("LEFT and RIGHT required"))
				return
			}
			left, err := speedArg(c, 0)
			if err != nil {
				c.Err(err)
				return
			}
			right, err := speedArg(c, 1)
			if err != nil {
				c.Err(err)
				return
			}
			if err := sh.ShellFrom(c).Session.Drive(left, right); err != nil {
				c.Err(err)
			}
		}),
	}

	// HaltCmd stops all motors and outputs.
	HaltCmd = ishell.Cmd{
		Name:    "halt",
		Aliases: []string{"stop"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if err := sh.ShellFrom(c).Session.Halt(); err != nil {
				c.Err(err)
			}
		}),
	}

	// PulseCmd drives for a fixed duration then halts.
	PulseCmd = ishell.Cmd{
		Name: "pulse",
		Help: "LEFT RIGHT SECONDS",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 3 {
				c.Err(fmt.Errorf("LEFT, RIGHT and SECONDS required"))
				return
			}
			left, err := speedArg(c, 0)
			if err != nil {
				c.Err(err)
				return
			}
			right, err := speedArg(c, 1)
			if err != nil {
				c.Err(err)
				return
			}
			secs, err := strconv.ParseFloat(c.Args[2], 64)
			if err != nil || secs < 0 {
				c.Err(fmt.Errorf("invalid SECONDS %q", c.Args[2]))
				return
			}
			session := sh.ShellFrom(c).Session
			if err := session.Drive(left, right); err != nil {
				c.Err(err)
				return
			}
			time.Sleep(time.Duration(secs * float64(time.Second)))
			if err := session.Halt(); err != nil {
				c.Err(err)
			}
		}),
	}
)

func init() {
	sh.AddCmds(
		&DriveCmd,
		&HaltCmd,
		&PulseCmd,
	)
}
