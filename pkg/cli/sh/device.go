package sh

import (
	"fmt"
	"strings"

	"golang.org/x/net/websocket"

	"github.com/michaelfm1211/gofinch/pkg/finch/hid"
	"github.com/michaelfm1211/gofinch/pkg/finch/sim"
	wspacket "github.com/michaelfm1211/gofinch/pkg/packet/websocket"
)

// OpenDevice resolves a connect target to a device handle. "sim"
// creates an in-process simulator; ws:// URLs dial a served device.
func OpenDevice(target string) (hid.Device, error) {
	switch {
	case target == "sim":
		return sim.NewDevice(), nil
	case strings.HasPrefix(target, "ws://"), strings.HasPrefix(target, "wss://"):
		conn, err := websocket.Dial(target, "", "http://localhost/")
		if err != nil {
			return nil, err
		}
		return hid.NewRemoteDevice(wspacket.New(conn)), nil
	}
	return nil, fmt.Errorf("unknown device target %q", target)
}
