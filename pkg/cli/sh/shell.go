// Package sh provides the ishell backed interactive robot shell.
package sh

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/abiosoft/ishell"

	"github.com/michaelfm1211/gofinch/pkg/finch"
)

// Shell wraps ishell with one robot session.
type Shell struct {
	Interactive bool
	OutputJSON  bool
	AutoConnect bool

	Shell   *ishell.Shell
	Config  *Config
	Session *finch.Session
}

const (
	shellKey          = "$shell"
	unconnectedPrompt = "[none] > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands = []*ishell.Cmd{
		&ConnectCmd,
		&DisconnectCmd,
		&FirmwareCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other command providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(unconnectedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeConnected wraps command func requiring a session.
func MustBeConnected(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Session == nil {
			c.Err(fmt.Errorf("not connected"))
			return
		}
		fn(c)
	}
}

// WithAutoConnect sets AutoConnect.
func (s *Shell) WithAutoConnect(en bool) *Shell {
	s.AutoConnect = en
	return s
}

// Connect opens a device by target and starts a session against it.
// The prior session, if any, is released first.
func (s *Shell) Connect(target string) error {
	dev, err := OpenDevice(target)
	if err != nil {
		return err
	}
	session, err := finch.Open(context.Background(), dev)
	if err != nil {
		return err
	}
	s.Disconnect()
	s.Session = session
	s.Shell.SetPrompt(fmt.Sprintf("%s > ", target))
	return nil
}

// Disconnect releases the current session.
func (s *Shell) Disconnect() {
	if s.Session != nil {
		if err := s.Session.Close(); err != nil {
			log.Printf("disconnect: %v", err)
		}
		s.Session = nil
		s.Shell.SetPrompt(unconnectedPrompt)
	}
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if s.AutoConnect && s.Config.Device != "" {
		if s.Interactive {
			s.Shell.Printf("Connecting %s ...\n", s.Config.Device)
		}
		if err := s.Connect(s.Config.Device); err != nil {
			log.Fatalf("connect %q failed: %v", s.Config.Device, err)
		}
	}
	defer s.Disconnect()

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

var (
	// ConnectCmd starts a session against a device.
	ConnectCmd = ishell.Cmd{
		Name:    "connect",
		Aliases: []string{"c"},
		Help:    "sim | ws://HOST:PORT/device",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			target := s.Config.Device
			if len(c.Args) > 0 {
				target = c.Args[0]
			}
			if target == "" {
				c.Err(fmt.Errorf("device target required"))
				return
			}
			if err := s.Connect(target); err != nil {
				c.Err(err)
			}
		},
	}

	// DisconnectCmd releases the current session.
	DisconnectCmd = ishell.Cmd{
		Name:    "disconnect",
		Aliases: []string{"d"},
		Help:    "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Disconnect()
		},
	}

	// FirmwareCmd prints the firmware identifier from the handshake.
	FirmwareCmd = ishell.Cmd{
		Name: "firmware",
		Help: "",
		Func: MustBeConnected(func(c *ishell.Context) {
			c.Printf("0x%02X\n", ShellFrom(c).Session.Firmware())
		}),
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New(NewConfig()).WithAutoConnect(true).Run(flag.Args()...)
}
