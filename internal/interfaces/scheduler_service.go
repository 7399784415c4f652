package interfaces

// SchedulerService runs recurring analysis jobs on a cron schedule
type SchedulerService interface {
	// Start begins the scheduler with the given cron expression.
	// Returns an error if the expression is invalid or the scheduler
	// is already running.
	Start(cronExpr string) error

	// Stop halts the scheduler and waits for a running job to finish
	Stop()

	// IsRunning reports whether the scheduler has been started
	IsRunning() bool
}
