// Package reporters provides output formatting for doctor check results.
package reporters

import (
	"fmt"
	"io"
	"slices"

	"github.com/nocoo/skill-task-notifier/internal/doctor"
)

// categoryOrder defines the display order for categories.
var categoryOrder = []doctor.Category{
	doctor.CategoryConfig,
	doctor.CategoryPush,
	doctor.CategoryDesktop,
	doctor.CategorySound,
}

// categoryNames maps categories to display names.
var categoryNames = map[doctor.Category]string{
	doctor.CategoryConfig:  "Configuration",
	doctor.CategoryPush:    "Remote Push",
	doctor.CategoryDesktop: "Desktop Popup",
	doctor.CategorySound:   "Sound",
}

// SimpleReporter provides checklist-style output.
type SimpleReporter struct {
	out io.Writer
}

// NewSimpleReporter creates a SimpleReporter writing to out.
func NewSimpleReporter(out io.Writer) *SimpleReporter {
	return &SimpleReporter{out: out}
}

// Report outputs the results in a simple checklist format.
func (r *SimpleReporter) Report(results []doctor.CheckResult, verbose bool) {
	fmt.Fprintln(r.out, "Checking task-notifier health...")
	fmt.Fprintln(r.out)

	for _, group := range groupByCategory(results) {
		fmt.Fprintf(r.out, "%s:\n", getCategoryName(group.Category))

		for _, result := range group.Results {
			r.printResult(result, verbose)
		}

		fmt.Fprintln(r.out)
	}

	errors, warnings, passed := countResults(results)
	fmt.Fprintf(r.out, "Summary: %d error(s), %d warning(s), %d passed\n", errors, warnings, passed)
}

// printResult prints a single check result.
func (r *SimpleReporter) printResult(result doctor.CheckResult, verbose bool) {
	fmt.Fprintf(r.out, "  %s %s", statusIcon(result), result.Name)

	if result.Message != "" {
		fmt.Fprintf(r.out, " - %s", result.Message)
	}

	fmt.Fprintln(r.out)

	if verbose {
		for _, detail := range result.Details {
			fmt.Fprintf(r.out, "     %s\n", detail)
		}
	}
}

// categoryGroup holds one category's results in display order.
type categoryGroup struct {
	Category doctor.Category
	Results  []doctor.CheckResult
}

// groupByCategory groups results by category, ordered per categoryOrder
// with unknown categories trailing.
func groupByCategory(results []doctor.CheckResult) []categoryGroup {
	categoryMap := make(map[doctor.Category][]doctor.CheckResult)

	var unknown []doctor.Category

	for _, result := range results {
		if _, seen := categoryMap[result.Category]; !seen && !slices.Contains(categoryOrder, result.Category) {
			unknown = append(unknown, result.Category)
		}

		categoryMap[result.Category] = append(categoryMap[result.Category], result)
	}

	grouped := make([]categoryGroup, 0, len(categoryMap))

	for _, category := range append(slices.Clone(categoryOrder), unknown...) {
		if rs, ok := categoryMap[category]; ok {
			grouped = append(grouped, categoryGroup{Category: category, Results: rs})
		}
	}

	return grouped
}

// getCategoryName returns the display name for a category.
func getCategoryName(category doctor.Category) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}

	return string(category)
}

// statusIcon returns the checklist icon for a check result.
func statusIcon(result doctor.CheckResult) string {
	switch result.Status {
	case doctor.StatusPass:
		return "✅"
	case doctor.StatusFail:
		if result.Severity == doctor.SeverityError {
			return "❌"
		}

		return "⚠️"
	case doctor.StatusSkipped:
		return "⊘"
	default:
		return "?"
	}
}

// countResults counts errors, warnings, and passed checks.
func countResults(results []doctor.CheckResult) (errors, warnings, passed int) {
	for _, result := range results {
		switch {
		case result.IsPassed():
			passed++
		case result.IsError():
			errors++
		case result.IsWarning():
			warnings++
		}
	}

	return errors, warnings, passed
}
