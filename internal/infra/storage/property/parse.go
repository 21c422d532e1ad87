package property

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
)

// Колонки CSV брони: guestName;createdAt;checkIn;checkOut;totalAmount
const (
	bookingColGuestName = iota
	bookingColCreatedAt
	bookingColCheckIn
	bookingColCheckOut
	bookingColTotalAmount
	bookingColCount
)

// Колонки CSV цен: month;dayStart;dayEnd;price
const (
	priceColMonth = iota
	priceColDayStart
	priceColDayEnd
	priceColPrice
	priceColCount
)

// monthNames фиксированный словарь из 12 названий месяцев во внешних CSV
// Названия нормализуются по регистру и пробелам перед сравнением
var monthNames = map[string]time.Month{
	"январь":   time.January,
	"февраль":  time.February,
	"март":     time.March,
	"апрель":   time.April,
	"май":      time.May,
	"июнь":     time.June,
	"июль":     time.July,
	"август":   time.August,
	"сентябрь": time.September,
	"октябрь":  time.October,
	"ноябрь":   time.November,
	"декабрь":  time.December,
}

// parseBookingRow парсит строку CSV в BookingInterval
// Строки с нечитаемыми датами или неположительной длиной интервала отбраковываются
func parseBookingRow(record []string) (domain.BookingInterval, error) {
	if len(record) < bookingColCount {
		return domain.BookingInterval{}, fmt.Errorf("expected %d columns, got %d", bookingColCount, len(record))
	}

	guestName := strings.TrimSpace(record[bookingColGuestName])
	if len(guestName) > domain.MaxGuestNameLength {
		return domain.BookingInterval{}, fmt.Errorf("guest name longer than %d characters", domain.MaxGuestNameLength)
	}

	createdAt, err := parseExternalDate(record[bookingColCreatedAt])
	if err != nil {
		return domain.BookingInterval{}, fmt.Errorf("invalid createdAt: %v", err)
	}

	checkIn, err := parseExternalDate(record[bookingColCheckIn])
	if err != nil {
		return domain.BookingInterval{}, fmt.Errorf("invalid checkIn: %v", err)
	}

	checkOut, err := parseExternalDate(record[bookingColCheckOut])
	if err != nil {
		return domain.BookingInterval{}, fmt.Errorf("invalid checkOut: %v", err)
	}

	var totalAmount int64
	if raw := strings.TrimSpace(record[bookingColTotalAmount]); raw != "" {
		totalAmount, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.BookingInterval{}, fmt.Errorf("invalid totalAmount %q", raw)
		}
		if totalAmount < 0 {
			return domain.BookingInterval{}, fmt.Errorf("negative totalAmount %d", totalAmount)
		}
	}

	booking := domain.BookingInterval{
		GuestName:   guestName,
		CreatedAt:   createdAt,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		TotalAmount: totalAmount,
	}

	if !booking.IsValid() {
		return domain.BookingInterval{}, fmt.Errorf("checkOut %s is not after checkIn %s",
			checkOut.Format(domain.ExternalDateFormat), checkIn.Format(domain.ExternalDateFormat))
	}

	return booking, nil
}

// parsePriceRow парсит строку CSV в PriceRule
func parsePriceRow(record []string) (domain.PriceRule, error) {
	if len(record) < priceColCount {
		return domain.PriceRule{}, fmt.Errorf("expected %d columns, got %d", priceColCount, len(record))
	}

	monthRaw := strings.ToLower(strings.TrimSpace(record[priceColMonth]))
	month, ok := monthNames[monthRaw]
	if !ok {
		return domain.PriceRule{}, fmt.Errorf("unknown month name %q", record[priceColMonth])
	}

	dayStart, err := strconv.Atoi(strings.TrimSpace(record[priceColDayStart]))
	if err != nil {
		return domain.PriceRule{}, fmt.Errorf("invalid dayStart %q", record[priceColDayStart])
	}

	dayEnd, err := strconv.Atoi(strings.TrimSpace(record[priceColDayEnd]))
	if err != nil {
		return domain.PriceRule{}, fmt.Errorf("invalid dayEnd %q", record[priceColDayEnd])
	}

	price, err := strconv.ParseInt(strings.TrimSpace(record[priceColPrice]), 10, 64)
	if err != nil {
		return domain.PriceRule{}, fmt.Errorf("invalid price %q", record[priceColPrice])
	}

	rule := domain.PriceRule{
		Month:    month,
		DayStart: dayStart,
		DayEnd:   dayEnd,
		Price:    price,
	}

	if !rule.IsValid() {
		return domain.PriceRule{}, fmt.Errorf("rule out of bounds: month=%d days=%d..%d price=%d",
			month, dayStart, dayEnd, price)
	}

	return rule, nil
}

// parseExternalDate парсит дату формата DD.MM.YYYY и обнуляет время
func parseExternalDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.ExternalDateFormat, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return domain.DateOnly(t), nil
}
