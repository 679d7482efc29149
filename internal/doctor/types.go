// Package doctor provides health checks for the notifier's environment.
package doctor

import "context"

// Severity represents the severity level of a check result.
type Severity string

const (
	// SeverityError indicates a problem that prevents a channel from working.
	SeverityError Severity = "error"
	// SeverityWarning indicates a degraded but working setup.
	SeverityWarning Severity = "warning"
	// SeverityInfo indicates informational output.
	SeverityInfo Severity = "info"
)

// Status represents the status of a health check.
type Status string

const (
	// StatusPass indicates the check passed.
	StatusPass Status = "pass"
	// StatusFail indicates the check failed.
	StatusFail Status = "fail"
	// StatusSkipped indicates the check was skipped.
	StatusSkipped Status = "skipped"
)

// Category represents the category of a health check.
type Category string

const (
	// CategoryConfig checks the configuration file.
	CategoryConfig Category = "config"
	// CategoryPush checks the remote push channel setup.
	CategoryPush Category = "push"
	// CategoryDesktop checks the desktop popup channel tooling.
	CategoryDesktop Category = "desktop"
	// CategorySound checks the sound channel tooling.
	CategorySound Category = "sound"
)

// CheckResult represents the result of a health check.
type CheckResult struct {
	// Name is the human-readable name of the check.
	Name string

	// Category indicates the category this check belongs to.
	Category Category

	// Severity indicates the severity level.
	Severity Severity

	// Status indicates whether the check passed, failed, or was skipped.
	Status Status

	// Message is the primary message describing the result.
	Message string

	// Details contains additional context about the result.
	Details []string
}

// HealthChecker performs a health check and returns a result.
type HealthChecker interface {
	// Name returns the human-readable name of the check.
	Name() string

	// Category returns the category this check belongs to.
	Category() Category

	// Check performs the health check and returns a result.
	Check(ctx context.Context) CheckResult
}

// Reporter formats and outputs check results.
type Reporter interface {
	// Report outputs the results of health checks.
	Report(results []CheckResult, verbose bool)
}

// NewCheckResult creates a new CheckResult with the given parameters.
func NewCheckResult(name string, category Category, severity Severity, status Status, message string) CheckResult {
	return CheckResult{
		Name:     name,
		Category: category,
		Severity: severity,
		Status:   status,
		Message:  message,
	}
}

// WithDetails adds details to a CheckResult.
func (r CheckResult) WithDetails(details ...string) CheckResult {
	r.Details = append(r.Details, details...)
	return r
}

// IsPassed reports whether the check passed.
func (r CheckResult) IsPassed() bool {
	return r.Status == StatusPass
}

// IsError reports whether the check failed with error severity.
func (r CheckResult) IsError() bool {
	return r.Status == StatusFail && r.Severity == SeverityError
}

// IsWarning reports whether the check failed with warning severity.
func (r CheckResult) IsWarning() bool {
	return r.Status == StatusFail && r.Severity == SeverityWarning
}

// IsSkipped reports whether the check was skipped.
func (r CheckResult) IsSkipped() bool {
	return r.Status == StatusSkipped
}

// Run executes every checker in order and collects the results.
func Run(ctx context.Context, checkers ...HealthChecker) []CheckResult {
	results := make([]CheckResult, 0, len(checkers))

	for _, c := range checkers {
		results = append(results, c.Check(ctx))
	}

	return results
}

// HasErrors reports whether any result is an error-severity failure.
func HasErrors(results []CheckResult) bool {
	for _, r := range results {
		if r.IsError() {
			return true
		}
	}

	return false
}
