package domain

import "time"

// PriceRule represents a recurring annual date-range-to-nightly-price mapping
// Правило никогда не пересекает границу месяца: DayStart/DayEnd внутри одного месяца
type PriceRule struct {
	Month    time.Month
	DayStart int
	DayEnd   int
	Price    int64
}

// Matches returns true if the rule applies to the given calendar date
func (r *PriceRule) Matches(date time.Time) bool {
	return r.Month == date.Month() && r.DayStart <= date.Day() && date.Day() <= r.DayEnd
}

// IsValid returns true if the rule passes ingestion validation
func (r *PriceRule) IsValid() bool {
	return r.Month >= time.January && r.Month <= time.December &&
		r.DayStart >= MinRuleDay && r.DayEnd <= MaxRuleDay &&
		r.DayStart <= r.DayEnd &&
		r.Price > 0
}
