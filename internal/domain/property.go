package domain

import (
	"sort"
	"time"
)

// Property is an immutable per-request snapshot of one rental unit:
// its bookings (source order) and price rules (order matters for resolution)
type Property struct {
	ID          string
	DisplayName string
	Bookings    []BookingInterval
	PriceRules  []PriceRule
}

// IsOccupied returns true if some booking occupies the date as a night
func (p *Property) IsOccupied(date time.Time) bool {
	for i := range p.Bookings {
		if p.Bookings[i].ContainsDate(date) {
			return true
		}
	}
	return false
}

// OccupiedDates returns the sorted union of occupied nights over all bookings
// Используется для блокировки дней в календарном виджете форм
func (p *Property) OccupiedDates() []time.Time {
	seen := make(map[time.Time]struct{})
	for i := range p.Bookings {
		b := &p.Bookings[i]
		for d := b.CheckIn; d.Before(b.CheckOut); d = d.AddDate(0, 0, 1) {
			seen[d] = struct{}{}
		}
	}

	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sortDates(dates)
	return dates
}

// FindConflict returns the first occupied date in [rangeStart, rangeEnd)
// Сканирует по возрастанию дат и останавливается на первом совпадении
// Back-to-back turnover (выезд утром, заезд вечером того же дня) конфликтом не является
func (p *Property) FindConflict(rangeStart, rangeEnd time.Time) (time.Time, bool) {
	for d := rangeStart; d.Before(rangeEnd); d = d.AddDate(0, 0, 1) {
		if p.IsOccupied(d) {
			return d, true
		}
	}
	return time.Time{}, false
}

// PriceFor resolves the nightly price for a calendar date
// Правила проверяются в исходном порядке, побеждает первое совпавшее
// false означает "цена не задана" — корректное состояние, не ошибка
func (p *Property) PriceFor(date time.Time) (int64, bool) {
	for i := range p.PriceRules {
		if p.PriceRules[i].Matches(date) {
			return p.PriceRules[i].Price, true
		}
	}
	return 0, false
}

func sortDates(dates []time.Time) {
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
}
