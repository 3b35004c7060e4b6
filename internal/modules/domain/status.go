package domain

import "time"

// DueSoonWindow is how far ahead of the next service date a module starts
// reporting due_soon.
const DueSoonWindow = 10 * 24 * time.Hour

// DeriveStatus computes the status consumers should display. A past next
// service date overrides whatever status is stored; a date inside the due
// window reports due_soon. Modules without a next service date keep their
// stored status.
func DeriveStatus(status ModuleStatus, nextServiceDate *time.Time, now time.Time) ModuleStatus {
	if nextServiceDate == nil {
		return status
	}

	if nextServiceDate.Before(now) {
		return ModuleStatusOverdue
	}

	if nextServiceDate.Sub(now) <= DueSoonWindow {
		return ModuleStatusDueSoon
	}

	return status
}
