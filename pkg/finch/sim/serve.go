package sim

import (
	"context"
	"io"

	"github.com/golang/glog"

	"github.com/michaelfm1211/gofinch/pkg/packet"
	"github.com/michaelfm1211/gofinch/pkg/run"
)

// Serve exposes a device over a packet stream. Inbound packets carry
// the report ID in byte 0 followed by the frame; responses go back as
// raw report packets. Serve returns when the stream ends or the
// context is canceled.
func Serve(ctx context.Context, rw packet.ReadWriter, dev *Device) error {
	if err := dev.Open(); err != nil {
		return err
	}
	defer dev.Close()

	dev.HandleReports(func(report []byte) {
		if err := rw.WritePacket(report); err != nil {
			glog.Warningf("sim: write report: %v", err)
		}
	})
	defer dev.HandleReports(nil)

	loop := func() error {
		for {
			pkt, err := rw.ReadPacket()
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
			if len(pkt) < 1 {
				continue
			}
			if err := dev.SendReport(pkt[0], pkt[1:]); err != nil {
				return err
			}
		}
	}
	if closer, ok := rw.(io.Closer); ok {
		return run.WithContextCloser(ctx, closer, loop)
	}
	return run.WithContext(ctx, loop)
}
