package calculate_stay_cost

import (
	"time"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
)

// buildBreakdown строит поночную разбивку стоимости за [checkIn, checkOut)
// Ночь без заданной цены учитывается как 0: это корректное состояние, не ошибка
// Флаг Occupied информационный — отказ по конфликту делается отдельным шагом до расчёта
func buildBreakdown(prop *domain.Property, checkIn, checkOut time.Time) ([]domain.CostBreakdownEntry, int64) {
	var entries []domain.CostBreakdownEntry
	var total int64

	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		price, _ := prop.PriceFor(d)
		total += price

		entries = append(entries, domain.CostBreakdownEntry{
			Date:         d,
			NightlyPrice: price,
			Occupied:     prop.IsOccupied(d),
		})
	}

	return entries, total
}

// autoDiscountPercent возвращает рекомендованную автоскидку по числу ночей
// Скидка плоская: при достижении порога — фиксированный процент, иначе 0
// Значение предзаполняет редактируемое поле формы и может быть переопределено
func autoDiscountPercent(nights, thresholdNights int) int {
	if nights >= thresholdNights {
		return domain.AutoDiscountPercent
	}
	return 0
}

// applyDiscount применяет процент скидки к сумме
// Суммы целочисленные (минимальная единица валюты), скидка считается
// целочисленным делением с отбрасыванием: saved = total * percent / 100
func applyDiscount(total int64, percent int) (discounted, saved int64) {
	saved = total * int64(percent) / 100
	return total - saved, saved
}
