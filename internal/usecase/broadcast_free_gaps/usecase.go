package broadcast_free_gaps

import (
	"context"
	"errors"
	"fmt"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
	propertyRepo "github.com/lexagoldenpost/reavito-sub000/internal/infra/storage/property"
	findFreeGaps "github.com/lexagoldenpost/reavito-sub000/internal/usecase/find_free_gaps"
)

// UseCase use case рассылки свободных окон в Telegram-канал
type UseCase struct {
	gapsFinder    GapsFinder
	propertyRepo  PropertyRepository
	telegram      TelegramClient
	defaultChatID int64 // Канал из конфигурации
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	gapsFinder GapsFinder,
	propertyRepo PropertyRepository,
	telegram TelegramClient,
	defaultChatID int64,
	logger Logger,
) *UseCase {
	return &UseCase{
		gapsFinder:    gapsFinder,
		propertyRepo:  propertyRepo,
		telegram:      telegram,
		defaultChatID: defaultChatID,
		logger:        logger,
	}
}

// Execute находит свободные окна и отправляет их в канал одним сообщением
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BroadcastFreeGaps: property=%s, horizon=%s..%s",
		req.PropertyID, req.HorizonStart.Format(domain.DateFormat), req.HorizonEnd.Format(domain.DateFormat))

	// 1. Ищем свободные окна (валидация диапазона — внутри gaps finder)
	gapsResp, err := uc.gapsFinder.Execute(ctx, &findFreeGaps.Request{
		PropertyID:   req.PropertyID,
		HorizonStart: req.HorizonStart,
		HorizonEnd:   req.HorizonEnd,
		MinNights:    req.MinNights,
	})
	if err != nil {
		switch {
		case errors.Is(err, findFreeGaps.ErrPropertyNotFound):
			return nil, ErrPropertyNotFound
		case errors.Is(err, findFreeGaps.ErrInvalidRange):
			return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		case errors.Is(err, findFreeGaps.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("BroadcastFreeGaps: gaps lookup failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	// 2. Нечего рассылать — это не успех с пустым сообщением, а отдельный исход
	if len(gapsResp.Gaps) == 0 {
		uc.logger.Info("BroadcastFreeGaps: property=%s has no gaps >= %d nights",
			req.PropertyID, gapsResp.MinNights)
		return nil, ErrNoFreeGaps
	}

	// 3. Имя объекта для заголовка сообщения
	prop, err := uc.propertyRepo.GetProperty(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("BroadcastFreeGaps: failed to load property id=%s: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to load property: %v", ErrInternal, err)
	}

	// 4. Составляем и отправляем сообщение
	chatID := uc.defaultChatID
	if req.ChatID != nil {
		chatID = *req.ChatID
	}

	message := composeMessage(prop.DisplayName, gapsResp.Gaps)

	if err := uc.telegram.SendMessage(ctx, chatID, message); err != nil {
		uc.logger.Error("BroadcastFreeGaps: send to chat_id=%d failed: %v", chatID, err)
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	uc.logger.Info("BroadcastFreeGaps: property=%s, sent %d gaps to chat_id=%d",
		req.PropertyID, len(gapsResp.Gaps), chatID)

	return &Response{
		PropertyID: req.PropertyID,
		ChatID:     chatID,
		Gaps:       gapsResp.Gaps,
		Message:    message,
	}, nil
}
