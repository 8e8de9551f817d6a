package main

import (
	"context"
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/michaelfm1211/gofinch/pkg/cli/sh"
	"github.com/michaelfm1211/gofinch/pkg/finch"
	"github.com/michaelfm1211/gofinch/pkg/run"
	"github.com/michaelfm1211/gofinch/pkg/telemetry"
)

//go-build: CGO_ENABLED=0

var (
	mqttURL  = "mqtt://localhost:1883/finch/"
	interval = telemetry.DefaultInterval
)

func init() {
	if val := os.Getenv("FINCH_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.DurationVar(&interval, "interval", interval, "Polling interval.")
}

func main() {
	flag.Parse()

	q, err := telemetry.NewQueueFromURL(mqttURL)
	if err != nil {
		glog.Exitln(err)
	}
	if err = q.Connect(); err != nil {
		glog.Exitf("connect %s: %v", mqttURL, err)
	}
	defer q.Close()

	conf := sh.NewConfig()
	dev, err := sh.OpenDevice(conf.Device)
	if err != nil {
		glog.Exitf("open %s: %v", conf.Device, err)
	}

	mon := telemetry.NewMonitor(q)
	mon.Interval = interval

	ctx := run.SignalContext(context.Background())
	err = finch.Run(ctx, dev, func(ctx context.Context, s *finch.Session) error {
		glog.Infof("monitoring %s (firmware %d) every %s",
			conf.Device, s.Firmware(), interval)
		return mon.Run(ctx, s)
	})
	if err != nil && ctx.Err() == nil {
		glog.Exitln(err)
	}
}
