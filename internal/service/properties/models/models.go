package models

// PropertyInfo краткая информация об объекте для списков
type PropertyInfo struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	BookingCount int    `json:"bookingCount"`
	RuleCount    int    `json:"ruleCount"`
}
