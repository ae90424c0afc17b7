package domain

// HealthStatus classifies a single doctor check.
type HealthStatus string

const (
	HealthOK   HealthStatus = "ok"
	HealthWarn HealthStatus = "warn"
)

// HealthCheck is one line of the doctor report.
type HealthCheck struct {
	Name    string
	Status  HealthStatus
	Details string
}

// HealthReport aggregates all doctor checks for display.
type HealthReport struct {
	Checks []HealthCheck
}
