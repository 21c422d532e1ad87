package domain

// Default configuration values
const (
	// DefaultAutoDiscountThresholdNights порог автоскидки по умолчанию
	// В двух вариантах форм исторически использовались 27 и 30 ночей,
	// поэтому порог — параметр вызова, а не константа
	DefaultAutoDiscountThresholdNights = 30

	// AutoDiscountPercent фиксированный процент автоскидки при достижении порога
	AutoDiscountPercent = 10

	// DefaultMinGapNights минимальная длина свободного окна для рассылки
	DefaultMinGapNights = 3
)

// Business validation constants
const (
	MinDiscountPercent = 0
	MaxDiscountPercent = 100

	MinRuleDay = 1
	MaxRuleDay = 31

	MaxGuestNameLength = 200
)

// Time format constants
const (
	DateFormat         = "2006-01-02" // YYYY-MM-DD, формат API
	ExternalDateFormat = "02.01.2006" // DD.MM.YYYY, формат внешних CSV и сообщений
)
