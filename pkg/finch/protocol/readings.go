package protocol

// Obstacles is the decoded obstacle detector reading.
type Obstacles struct {
	// Left reports an obstacle in front of the left detector.
	Left bool
	// Right reports an obstacle in front of the right detector.
	Right bool
}

// Acceleration is the decoded accelerometer reading in gravities.
type Acceleration struct {
	X, Y, Z float64
	// Tap reports the robot was tapped since the last query.
	Tap bool
	// Shake reports the robot was shaken since the last query.
	Shake bool
}

// Light is the decoded light sensor reading, raw intensities 0-255.
type Light struct {
	Left  uint8
	Right uint8
}

// accelScale converts a bias-corrected 6-bit axis value to gravities.
const accelScale = 1.6 / 32.0

// tap/shake flag bits in the accelerometer status byte.
const (
	accelTapBit   = 0x20
	accelShakeBit = 0x80
)

// DecodeObstacles interprets a CmdObstacles response. Bytes 0 and 1
// are 0/1 flags for the left and right detectors.
func DecodeObstacles(data []byte) (Obstacles, error) {
	if len(data) < ObstaclesResponseSize {
		return Obstacles{}, &ResponseError{Code: CmdObstacles, Size: len(data), Want: ObstaclesResponseSize}
	}
	return Obstacles{Left: data[0] == 1, Right: data[1] == 1}, nil
}

// DecodeAcceleration interprets a CmdAcceleration response. Bytes 0-2
// are raw axis readings over a 6-bit range, byte 4 carries the tap and
// shake flags.
func DecodeAcceleration(data []byte) (Acceleration, error) {
	if len(data) < AccelerationResponseSize {
		return Acceleration{}, &ResponseError{Code: CmdAcceleration, Size: len(data), Want: AccelerationResponseSize}
	}
	return Acceleration{
		X:     accelAxis(data[0]),
		Y:     accelAxis(data[1]),
		Z:     accelAxis(data[2]),
		Tap:   data[4]&accelTapBit != 0,
		Shake: data[4]&accelShakeBit != 0,
	}, nil
}

// DecodeTemperature interprets a CmdTemperature response. Byte 0 is a
// raw thermometer value converted to degrees Celsius.
func DecodeTemperature(data []byte) (float64, error) {
	if len(data) < TemperatureResponseSize {
		return 0, &ResponseError{Code: CmdTemperature, Size: len(data), Want: TemperatureResponseSize}
	}
	return (float64(data[0])-127)/2.4 + 25, nil
}

// DecodeLight interprets a CmdLight response. Bytes 0 and 1 are the
// raw left and right intensities, no conversion applied.
func DecodeLight(data []byte) (Light, error) {
	if len(data) < LightResponseSize {
		return Light{}, &ResponseError{Code: CmdLight, Size: len(data), Want: LightResponseSize}
	}
	return Light{Left: data[0], Right: data[1]}, nil
}

// accelAxis corrects the magnitude bias of a raw axis byte. Values
// above 31 wrap around the 6-bit range.
func accelAxis(raw byte) float64 {
	v := int(raw)
	if v > 31 {
		v -= 64
	}
	return float64(v) * accelScale
}
