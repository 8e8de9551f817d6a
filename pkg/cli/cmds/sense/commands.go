// Package sense provides sensor query commands.
package sense

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/michaelfm1211/gofinch/pkg/cli/sh"
)

func emit(c *ishell.Context, v interface{}, plain string) {
	if sh.ShellFrom(c).OutputJSON {
		out, err := json.Marshal(v)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	c.Println(plain)
}

var (
	// ObstaclesCmd reads the obstacle sensors.
	ObstaclesCmd = ishell.Cmd{
		Name: "obstacles",
		Help: "read obstacle sensors",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			obs, err := sh.ShellFrom(c).Session.ReadObstacles(context.Background())
			if err != nil {
				c.Err(err)
				return
			}
			emit(c, obs, fmt.Sprintf("left: %v right: %v", obs.Left, obs.Right))
		}),
	}

	// AccelCmd reads the accelerometer.
	AccelCmd = ishell.Cmd{
		Name: "accel",
		Help: "read accelerometer",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			acc, err := sh.ShellFrom(c).Session.ReadAcceleration(context.Background())
			if err != nil {
				c.Err(err)
				return
			}
			emit(c, acc, fmt.Sprintf("x: %.3f y: %.3f z: %.3f tap: %v shake: %v",
				acc.X, acc.Y, acc.Z, acc.Tap, acc.Shake))
		}),
	}

	// TempCmd reads the temperature sensor.
	TempCmd = ishell.Cmd{
		Name: "temp",
		Help: "read temperature (Celsius)",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			deg, err := sh.ShellFrom(c).Session.ReadTemperature(context.Background())
			if err != nil {
				c.Err(err)
				return
			}
			emit(c, map[string]float64{"celsius": deg}, fmt.Sprintf("%.2f C", deg))
		}),
	}

	// LightCmd reads the light sensors.
	LightCmd = ishell.Cmd{
		Name: "light",
		Help: "read light sensors",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			light, err := sh.ShellFrom(c).Session.ReadLight(context.Background())
			if err != nil {
				c.Err(err)
				return
			}
			emit(c, light, fmt.Sprintf("left: %d right: %d", light.Left, light.Right))
		}),
	}
)

func init() {
	sh.AddCmds(
		&ObstaclesCmd,
		&AccelCmd,
		&TempCmd,
		&LightCmd,
	)
}
