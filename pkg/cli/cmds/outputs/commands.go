// Package outputs provides LED and buzzer commands.
package outputs

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/michaelfm1211/gofinch/pkg/cli/sh"
)

func byteArg(c *ishell.Context, n int) (uint8, error) {
	val, err := strconv.ParseUint(c.Args[n], 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %v", c.Args[n], err)
	}
	return uint8(val), nil
}

var (
	// LedCmd sets the beak LED color.
	LedCmd = ishell.Cmd{
		Name: "led",
		Help: "R(0-255) G(0-255) B(0-255)",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 3 {
				c.Err(fmt.Errorf("R, G and B required"))
				return
			}
			var rgb [3]uint8
			for n := range rgb {
				val, err := byteArg(c, n)
				if err != nil {
					c.Err(err)
					return
				}
				rgb[n] = val
			}
			if err := sh.ShellFrom(c).Session.Illuminate(rgb[0], rgb[1], rgb[2]); err != nil {
				c.Err(err)
			}
		}),
	}

	// BuzzCmd plays a tone and waits for it to finish.
	BuzzCmd = ishell.Cmd{
		Name: "buzz",
		Help: "SECONDS FREQ(Hz)",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("SECONDS and FREQ required"))
				return
			}
			secs, err := strconv.ParseFloat(c.Args[0], 64)
			if err != nil || secs < 0 {
				c.Err(fmt.Errorf("invalid SECONDS %q", c.Args[0]))
				return
			}
			freq, err := strconv.ParseUint(c.Args[1], 10, 16)
			if err != nil {
				c.Err(fmt.Errorf("invalid FREQ %q: %v", c.Args[1], err))
				return
			}
			err = sh.ShellFrom(c).Session.Sound(context.Background(),
				time.Duration(secs*float64(time.Second)), uint16(freq))
			if err != nil {
				c.Err(err)
			}
		}),
	}
)

func init() {
	sh.AddCmds(
		&LedCmd,
		&BuzzCmd,
	)
}
