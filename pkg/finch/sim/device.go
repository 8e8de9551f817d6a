package sim

import (
	"math"
	"sync"

	"github.com/golang/glog"

	"github.com/michaelfm1211/gofinch/pkg/finch/hid"
	"github.com/michaelfm1211/gofinch/pkg/finch/protocol"
)

// DefaultFirmware is the identifier byte the simulator reports.
const DefaultFirmware = 0x07

// accelScale mirrors the firmware's 6-bit axis encoding.
const accelScale = 1.6 / 32.0

// Device is a simulated Finch.
type Device struct {
	// Firmware is the identifier returned for the identify command.
	Firmware byte

	lock    sync.Mutex
	opened  bool
	handler hid.ReportHandler

	// actuator state
	left, right uint8
	r, g, b     uint8
	idle        bool

	// sensor model
	obstacles protocol.Obstacles
	accelRaw  [3]byte
	tap       bool
	shake     bool
	tempRaw   byte
	light     protocol.Light

	// introspection
	frames     [][]byte
	openCount  int
	closeCount int
}

// NewDevice creates a simulated Finch with an ambient sensor model:
// no obstacles, level orientation, 25°C, dark.
func NewDevice() *Device {
	return &Device{
		Firmware: DefaultFirmware,
		accelRaw: [3]byte{0, 0, 20}, // 1G on Z, robot sitting flat
		tempRaw:  127,
	}
}

// Open implements hid.Device.
func (d *Device) Open() error {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.opened = true
	d.openCount++
	return nil
}

// Close implements hid.Device.
func (d *Device) Close() error {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.opened = false
	d.closeCount++
	return nil
}

// HandleReports implements hid.Device.
func (d *Device) HandleReports(h hid.ReportHandler) {
	d.lock.Lock()
	d.handler = h
	d.lock.Unlock()
}

// SendReport implements hid.Device. Actuator frames update the
// simulated state; sensor queries deliver one encoded response report
// to the registered handler.
func (d *Device) SendReport(reportID byte, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	d.lock.Lock()
	frame := make([]byte, len(data))
	copy(frame, data)
	d.frames = append(d.frames, frame)

	var response []byte
	switch frame[0] {
	case protocol.CmdDrive:
		if len(frame) >= 5 {
			d.left, d.right = frame[2], frame[4]
		}
		d.idle = false
	case protocol.CmdIlluminate:
		if len(frame) >= 4 {
			d.r, d.g, d.b = frame[1], frame[2], frame[3]
		}
		d.idle = false
	case protocol.CmdSound:
		d.idle = false
	case protocol.CmdHalt:
		d.left, d.right = 0, 0
	case protocol.CmdIdle:
		d.left, d.right = 0, 0
		d.r, d.g, d.b = 0, 0, 0
		d.idle = true
	case protocol.CmdIdentify:
		response = d.report(d.Firmware)
	case protocol.CmdObstacles:
		response = d.report(flag(d.obstacles.Left), flag(d.obstacles.Right))
	case protocol.CmdAcceleration:
		var status byte
		if d.tap {
			status |= 0x20
		}
		if d.shake {
			status |= 0x80
		}
		// tap and shake are reported once, then cleared
		d.tap, d.shake = false, false
		response = d.report(d.accelRaw[0], d.accelRaw[1], d.accelRaw[2], 0, status)
	case protocol.CmdTemperature:
		response = d.report(d.tempRaw)
	case protocol.CmdLight:
		response = d.report(d.light.Left, d.light.Right)
	default:
		glog.Warningf("sim: unknown command %q", frame[0])
	}
	h := d.handler
	d.lock.Unlock()

	if response != nil && h != nil {
		h(response)
	}
	return nil
}

// SetObstacles configures the obstacle detector model.
func (d *Device) SetObstacles(left, right bool) {
	d.lock.Lock()
	d.obstacles = protocol.Obstacles{Left: left, Right: right}
	d.lock.Unlock()
}

// SetAcceleration configures the accelerometer model in gravities.
// Values are quantized to the firmware's 6-bit axis range.
func (d *Device) SetAcceleration(x, y, z float64, tap, shake bool) {
	d.lock.Lock()
	d.accelRaw = [3]byte{axisRaw(x), axisRaw(y), axisRaw(z)}
	d.tap, d.shake = tap, shake
	d.lock.Unlock()
}

// SetTemperature configures the thermometer model in degrees Celsius.
func (d *Device) SetTemperature(celsius float64) {
	d.lock.Lock()
	d.tempRaw = tempRaw(celsius)
	d.lock.Unlock()
}

// SetLight configures the light sensor model, raw intensities 0-255.
func (d *Device) SetLight(left, right uint8) {
	d.lock.Lock()
	d.light = protocol.Light{Left: left, Right: right}
	d.lock.Unlock()
}

// Wheels returns the simulated wheel speeds.
func (d *Device) Wheels() (left, right uint8) {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.left, d.right
}

// LED returns the simulated beak LED color.
func (d *Device) LED() (r, g, b uint8) {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.r, d.g, d.b
}

// Idle reports whether the last lifecycle command put the robot idle.
func (d *Device) Idle() bool {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.idle
}

// Frames returns all frames received so far, oldest first.
func (d *Device) Frames() [][]byte {
	d.lock.Lock()
	defer d.lock.Unlock()
	frames := make([][]byte, len(d.frames))
	copy(frames, d.frames)
	return frames
}

// Counts returns how many times the device was opened and closed.
func (d *Device) Counts() (opens, closes int) {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.openCount, d.closeCount
}

// report pads a response payload to a full-size input report.
func (d *Device) report(data ...byte) []byte {
	report := make([]byte, protocol.FrameSize)
	copy(report, data)
	return report
}

func flag(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// axisRaw quantizes gravities to the biased 6-bit axis encoding.
func axisRaw(g float64) byte {
	v := int(math.Round(g / accelScale))
	if v > 31 {
		v = 31
	}
	if v < -32 {
		v = -32
	}
	if v < 0 {
		v += 64
	}
	return byte(v)
}

// tempRaw quantizes degrees Celsius to the raw thermometer byte.
func tempRaw(celsius float64) byte {
	v := int(math.Round((celsius-25)*2.4 + 127))
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return byte(v)
}
