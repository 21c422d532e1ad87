package broadcast_free_gaps

import (
	"fmt"
	"strings"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
)

// composeMessage собирает текст маркетингового сообщения о свободных датах
// Даты — во внешнем формате DD.MM.YYYY, как в исходных формах
func composeMessage(displayName string, gaps []domain.FreePeriod) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🏠 %s — свободные даты:\n", displayName)

	for _, g := range gaps {
		fmt.Fprintf(&sb, "\n✅ %s — %s (%s)",
			g.Start.Format(domain.ExternalDateFormat),
			g.End.Format(domain.ExternalDateFormat),
			nightsLabel(g.Nights()))
	}

	sb.WriteString("\n\nПишите в личные сообщения для бронирования!")

	return sb.String()
}

// nightsLabel склоняет "ночь" по числу
func nightsLabel(n int) string {
	mod10 := n % 10
	mod100 := n % 100

	switch {
	case mod10 == 1 && mod100 != 11:
		return fmt.Sprintf("%d ночь", n)
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return fmt.Sprintf("%d ночи", n)
	default:
		return fmt.Sprintf("%d ночей", n)
	}
}
