package calculate_stay_cost

import (
	"time"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
)

// Request модель запроса расчёта стоимости проживания
type Request struct {
	PropertyID string
	CheckIn    time.Time // Заезд (включительно)
	CheckOut   time.Time // Выезд (исключительно)

	// DiscountPercent ручная скидка [0..100]; nil — применяется автоскидка
	DiscountPercent *int

	// AutoDiscountThresholdNights порог автоскидки; nil — порог из конфигурации сервиса
	// Исторически две формы использовали разные пороги (27 и 30), поэтому параметр
	AutoDiscountThresholdNights *int
}

// Response модель ответа с итоговой стоимостью и разбивкой по ночам
type Response struct {
	PropertyID string
	CheckIn    time.Time
	CheckOut   time.Time
	Nights     int

	Total               int64 // Сумма цен за все ночи до скидки
	AutoDiscountPercent int   // Рекомендованная автоскидка (информационно)
	AppliedPercent      int   // Фактически применённый процент
	Discounted          int64 // Итог после скидки
	SavedAmount         int64 // Сэкономлено

	Breakdown []domain.CostBreakdownEntry
}
