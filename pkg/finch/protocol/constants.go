package protocol

// FrameSize is the fixed length of every outbound command frame.
const FrameSize = 8

// MaxParams is the maximum number of parameter bytes in one frame:
// FrameSize minus the command code byte.
const MaxParams = FrameSize - 1

// Command codes understood by the Finch firmware.
const (
	// CmdIdentify requests the single-byte firmware identifier.
	CmdIdentify = 'z'

	// CmdDrive sets both wheel speeds.
	CmdDrive = 'M'

	// CmdSound plays a tone on the buzzer.
	CmdSound = 'B'

	// CmdIlluminate sets the beak LED color.
	CmdIlluminate = 'O'

	// CmdHalt stops all motors and outputs.
	CmdHalt = 'X'

	// CmdObstacles queries the obstacle detectors.
	CmdObstacles = 'I'

	// CmdAcceleration queries the accelerometer.
	CmdAcceleration = 'A'

	// CmdTemperature queries the thermometer.
	CmdTemperature = 'T'

	// CmdLight queries the light sensors.
	CmdLight = 'L'

	// CmdIdle returns the robot to its idle state. Sent once at
	// session teardown.
	CmdIdle = 'R'
)

// Expected response payload sizes per sensor query.
const (
	// ObstaclesResponseSize is the minimum response size for CmdObstacles.
	ObstaclesResponseSize = 2

	// AccelerationResponseSize is the minimum response size for
	// CmdAcceleration: three axis bytes, one reserved byte and the
	// tap/shake flag byte.
	AccelerationResponseSize = 5

	// TemperatureResponseSize is the minimum response size for CmdTemperature.
	TemperatureResponseSize = 1

	// LightResponseSize is the minimum response size for CmdLight.
	LightResponseSize = 2

	// IdentifyResponseSize is the minimum response size for CmdIdentify.
	IdentifyResponseSize = 1
)
