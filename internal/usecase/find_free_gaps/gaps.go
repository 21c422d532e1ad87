package find_free_gaps

import (
	"sort"
	"time"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
)

// findFreeGaps вычисляет максимальные свободные окна внутри горизонта
// Алгоритм — проход курсором по броням, отсортированным по заезду:
// окно перед каждой бронью, затем хвост после последней; всё клампится горизонтом
// Окна короче minNights отбрасываются целиком, частично они не сообщаются
func findFreeGaps(bookings []domain.BookingInterval, horizonStart, horizonEnd time.Time, minNights int) []domain.FreePeriod {
	// Исходный порядок броней не гарантирован, сортируем копию по checkIn
	sorted := make([]domain.BookingInterval, len(bookings))
	copy(sorted, bookings)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CheckIn.Before(sorted[j].CheckIn)
	})

	var gaps []domain.FreePeriod
	current := horizonStart

	for i := range sorted {
		if !current.Before(horizonEnd) {
			break
		}

		b := &sorted[i]

		if b.CheckIn.After(current) {
			end := b.CheckIn
			if end.After(horizonEnd) {
				end = horizonEnd
			}
			if end.After(current) {
				gaps = append(gaps, domain.FreePeriod{Start: current, End: end})
			}
		}

		if b.CheckOut.After(current) {
			current = b.CheckOut
		}
	}

	// Хвостовое окно после последней брони
	if current.Before(horizonEnd) {
		gaps = append(gaps, domain.FreePeriod{Start: current, End: horizonEnd})
	}

	// Фильтр по минимальной длине
	result := make([]domain.FreePeriod, 0, len(gaps))
	for _, g := range gaps {
		if g.Nights() >= minNights {
			result = append(result, g)
		}
	}

	return result
}
