package hid

// ReportHandler consumes one inbound report payload.
type ReportHandler func(report []byte)

// Device is the narrow contract expected from the host transport.
// Implementations deliver inbound reports one at a time to the
// registered handler.
type Device interface {
	// Open establishes the connection to the physical device.
	Open() error
	// Close releases the connection.
	Close() error
	// SendReport sends one output report.
	SendReport(reportID byte, data []byte) error
	// HandleReports registers the handler for inbound reports.
	// Passing nil removes the current handler.
	HandleReports(ReportHandler)
}
