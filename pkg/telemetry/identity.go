package telemetry

import (
	"fmt"

	"github.com/denisbrodbeck/machineid"
)

// ClientID derives a stable MQTT client identity from the machine ID,
// falling back to a fixed name when the machine ID is unavailable.
func ClientID() string {
	id, err := machineid.ID()
	if err != nil {
		return "finch"
	}
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("finch-%s", id)
}
