package models

// RelayRequest запрос на ретрансляцию произвольного JSON-объекта в Telegram
// Ключи filename и caption управляют отправкой и в сам документ не попадают
type RelayRequest struct {
	Payload map[string]interface{} `json:"payload"`
	ChatID  *int64                 `json:"chatId,omitempty"` // nil — канал из конфигурации
	AsFile  bool                   `json:"asFile"`
}

// RelayResult результат ретрансляции
type RelayResult struct {
	ChatID   int64  `json:"chatId"`
	Kind     string `json:"kind"` // document | message
	Filename string `json:"filename,omitempty"`
}
