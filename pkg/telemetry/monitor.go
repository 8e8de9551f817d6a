package telemetry

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang/glog"

	"github.com/michaelfm1211/gofinch/pkg/finch"
)

// Publisher is the narrow publishing contract Monitor needs.
// *Queue satisfies it.
type Publisher interface {
	Pub(topic string, payload []byte) error
}

// Sample payloads published per sensor topic.
type (
	// ObstaclesSample is published on the "obstacles" topic.
	ObstaclesSample struct {
		Time  time.Time `json:"time"`
		Left  bool      `json:"left"`
		Right bool      `json:"right"`
	}

	// AccelerationSample is published on the "acceleration" topic.
	AccelerationSample struct {
		Time  time.Time `json:"time"`
		X     float64   `json:"x"`
		Y     float64   `json:"y"`
		Z     float64   `json:"z"`
		Tap   bool      `json:"tap"`
		Shake bool      `json:"shake"`
	}

	// TemperatureSample is published on the "temperature" topic.
	TemperatureSample struct {
		Time    time.Time `json:"time"`
		Celsius float64   `json:"celsius"`
	}

	// LightSample is published on the "light" topic.
	LightSample struct {
		Time  time.Time `json:"time"`
		Left  uint8     `json:"left"`
		Right uint8     `json:"right"`
	}
)

// DefaultInterval is the default polling interval.
const DefaultInterval = time.Second

// Monitor polls all four sensors of one session on an interval and
// publishes JSON samples. The session serializes the queries, so one
// poll cycle never pipelines requests.
type Monitor struct {
	Publisher Publisher
	Interval  time.Duration
}

// NewMonitor creates a Monitor with the default interval.
func NewMonitor(pub Publisher) *Monitor {
	return &Monitor{Publisher: pub, Interval: DefaultInterval}
}

// Run polls until the context is canceled. A failed read or publish
// ends the run: the protocol has no recovery handshake, so errors are
// surfaced rather than retried.
func (m *Monitor) Run(ctx context.Context, s *finch.Session) error {
	interval := m.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := m.poll(ctx, s); err != nil {
				return err
			}
		}
	}
}

// poll reads all four sensors once and publishes the samples.
func (m *Monitor) poll(ctx context.Context, s *finch.Session) error {
	now := time.Now()

	obstacles, err := s.ReadObstacles(ctx)
	if err != nil {
		return err
	}
	if err := m.pub("obstacles", ObstaclesSample{
		Time: now, Left: obstacles.Left, Right: obstacles.Right,
	}); err != nil {
		return err
	}

	accel, err := s.ReadAcceleration(ctx)
	if err != nil {
		return err
	}
	if err := m.pub("acceleration", AccelerationSample{
		Time: now, X: accel.X, Y: accel.Y, Z: accel.Z,
		Tap: accel.Tap, Shake: accel.Shake,
	}); err != nil {
		return err
	}

	celsius, err := s.ReadTemperature(ctx)
	if err != nil {
		return err
	}
	if err := m.pub("temperature", TemperatureSample{
		Time: now, Celsius: celsius,
	}); err != nil {
		return err
	}

	light, err := s.ReadLight(ctx)
	if err != nil {
		return err
	}
	return m.pub("light", LightSample{
		Time: now, Left: light.Left, Right: light.Right,
	})
}

func (m *Monitor) pub(topic string, sample interface{}) error {
	payload, err := json.Marshal(sample)
	if err != nil {
		return err
	}
	glog.V(1).Infof("sample %s: %s", topic, payload)
	return m.Publisher.Pub(topic, payload)
}
