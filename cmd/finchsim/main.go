package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	"github.com/michaelfm1211/gofinch/pkg/finch/sim"
	wspacket "github.com/michaelfm1211/gofinch/pkg/packet/websocket"
	"github.com/michaelfm1211/gofinch/pkg/run"
)

//go-build: CGO_ENABLED=0

var listenAddr = ":7700"

func init() {
	if val := os.Getenv("FINCH_SIM_LISTEN"); val != "" {
		listenAddr = val
	}
	flag.StringVar(&listenAddr, "listen", listenAddr, "Listen address.")
}

func main() {
	flag.Parse()

	ctx := run.SignalContext(context.Background())
	http.Handle("/", websocket.Handler(func(conn *websocket.Conn) {
		glog.Infof("connected: %s", conn.Request().RemoteAddr)
		err := sim.Serve(ctx, wspacket.New(conn), sim.NewDevice())
		if err != nil {
			glog.Warningf("%s: session ended: %v", conn.Request().RemoteAddr, err)
		}
		glog.Infof("disconnected: %s", conn.Request().RemoteAddr)
	}))
	glog.Infof("listening on %s", listenAddr)
	if err := http.ListenAndServe(listenAddr, nil); err != nil {
		glog.Exitf("listen: %v", err)
	}
}
