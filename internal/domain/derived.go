package domain

import "time"

// CostBreakdownEntry is one night of a computed stay cost
// Occupied проставляется по существующим броням и носит информационный характер:
// отказ по конфликту — отдельный предварительный шаг на стороне вызывающего
type CostBreakdownEntry struct {
	Date         time.Time
	NightlyPrice int64 // 0, если цена на дату не задана
	Occupied     bool
}

// FreePeriod is a maximal unbooked half-open interval [Start, End) within a horizon
type FreePeriod struct {
	Start time.Time
	End   time.Time
}

// Nights returns the period length in nights
func (p *FreePeriod) Nights() int {
	return int(p.End.Sub(p.Start).Hours() / 24)
}
