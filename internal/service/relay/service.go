package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/lexagoldenpost/reavito-sub000/internal/service/relay/models"
)

const (
	keyFilename = "filename"
	keyCaption  = "caption"

	defaultFilenameBase = "payload"

	kindDocument = "document"
	kindMessage  = "message"
)

// Service ретранслирует произвольный JSON в Telegram файлом или сообщением
// Содержимое JSON для сервиса непрозрачно: имена полей сохраняются как есть,
// вырезаются только служебные ключи filename и caption
type Service struct {
	telegram      TelegramClient
	defaultChatID int64
	metrics       MetricsRecorder // может быть nil
	logger        Logger
}

// NewService создает новый экземпляр сервиса ретрансляции
func NewService(telegram TelegramClient, defaultChatID int64, metrics MetricsRecorder, logger Logger) *Service {
	return &Service{
		telegram:      telegram,
		defaultChatID: defaultChatID,
		metrics:       metrics,
		logger:        logger,
	}
}

// Send отправляет payload в указанный чат (или канал по умолчанию)
func (s *Service) Send(ctx context.Context, req *models.RelayRequest) (*models.RelayResult, error) {
	if len(req.Payload) == 0 {
		return nil, ErrEmptyPayload
	}

	chatID := s.defaultChatID
	if req.ChatID != nil {
		chatID = *req.ChatID
	}

	// Служебные ключи вынимаются из payload до сериализации
	payload := make(map[string]interface{}, len(req.Payload))
	for k, v := range req.Payload {
		payload[k] = v
	}

	filenameBase := defaultFilenameBase
	if v, ok := payload[keyFilename].(string); ok && v != "" {
		filenameBase = v
	}
	delete(payload, keyFilename)

	caption := ""
	if v, ok := payload[keyCaption].(string); ok {
		caption = v
	}
	delete(payload, keyCaption)

	data, err := marshalPretty(payload)
	if err != nil {
		s.logger.Error("Relay.Send: failed to marshal payload: %v", err)
		return nil, fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	kind := kindMessage
	result := &models.RelayResult{ChatID: chatID, Kind: kindMessage}

	if req.AsFile {
		kind = kindDocument
		result.Kind = kindDocument
		result.Filename = fmt.Sprintf("%s_%s.json", filenameBase, uuid.NewString()[:8])
		err = s.telegram.SendDocument(ctx, chatID, result.Filename, data, caption)
	} else {
		err = s.telegram.SendMessage(ctx, chatID, string(data))
	}

	if err != nil {
		s.recordSent(kind, "error")
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	s.recordSent(kind, "ok")
	s.logger.Info("Relay.Send: sent %s to chat_id=%d", kind, chatID)
	return result, nil
}

func (s *Service) recordSent(kind, status string) {
	if s.metrics != nil {
		s.metrics.IncRelaySent(kind, status)
	}
}

// marshalPretty сериализует payload в человекочитаемый UTF-8 JSON
// без экранирования HTML, чтобы кириллица и ссылки оставались читаемыми
func marshalPretty(payload map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
