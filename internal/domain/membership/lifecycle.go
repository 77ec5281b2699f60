package membership

import "time"

// MembershipEndDate computes the end date of a membership term that
// starts on startDate under the given plan. Walk-in plans grant a
// single day of access; every other plan adds its duration in calendar
// months, with day-of-month overflow normalized by the date library's
// month rollover.
func MembershipEndDate(startDate time.Time, plan *Plan) (time.Time, error) {
	if plan == nil {
		return time.Time{}, ErrPlanNotFound
	}
	if plan.IsWalkIn() {
		return startDate.AddDate(0, 0, 1), nil
	}
	if plan.DurationMonths <= 0 {
		return time.Time{}, ErrPlanDurationInvalid
	}
	return startDate.AddDate(0, plan.DurationMonths, 0), nil
}

// MembershipEndDateByName computes the end date using a plan name and a
// duration lookup table. A "Walk-in" plan name grants one day regardless
// of the table contents; an unknown name is an error, never a fallback.
func MembershipEndDateByName(startDate time.Time, planName string, durations map[string]int) (time.Time, error) {
	if planName == WalkInPlanName {
		return startDate.AddDate(0, 0, 1), nil
	}
	months, ok := durations[planName]
	if !ok {
		return time.Time{}, ErrPlanNotFound
	}
	if months <= 0 {
		return time.Time{}, ErrPlanDurationInvalid
	}
	return startDate.AddDate(0, months, 0), nil
}
