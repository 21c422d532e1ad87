package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	broadcastFreeGapsHandler "github.com/lexagoldenpost/reavito-sub000/internal/api/handlers/broadcast_free_gaps"
	calculateCostHandler "github.com/lexagoldenpost/reavito-sub000/internal/api/handlers/calculate_cost"
	checkAvailabilityHandler "github.com/lexagoldenpost/reavito-sub000/internal/api/handlers/check_availability"
	getFreeGapsHandler "github.com/lexagoldenpost/reavito-sub000/internal/api/handlers/get_free_gaps"
	getOccupancyGridHandler "github.com/lexagoldenpost/reavito-sub000/internal/api/handlers/get_occupancy_grid"
	getOccupiedDatesHandler "github.com/lexagoldenpost/reavito-sub000/internal/api/handlers/get_occupied_dates"
	getPropertiesHandler "github.com/lexagoldenpost/reavito-sub000/internal/api/handlers/get_properties"
	sendRelayHandler "github.com/lexagoldenpost/reavito-sub000/internal/api/handlers/send_relay"
	"github.com/lexagoldenpost/reavito-sub000/internal/api/middleware"
	"github.com/lexagoldenpost/reavito-sub000/internal/config"
	propertyRepo "github.com/lexagoldenpost/reavito-sub000/internal/infra/storage/property"
	telegramClient "github.com/lexagoldenpost/reavito-sub000/internal/integrations/telegram"
	propertiesService "github.com/lexagoldenpost/reavito-sub000/internal/service/properties"
	relayService "github.com/lexagoldenpost/reavito-sub000/internal/service/relay"
	broadcastFreeGapsUC "github.com/lexagoldenpost/reavito-sub000/internal/usecase/broadcast_free_gaps"
	calculateStayCostUC "github.com/lexagoldenpost/reavito-sub000/internal/usecase/calculate_stay_cost"
	checkAvailabilityUC "github.com/lexagoldenpost/reavito-sub000/internal/usecase/check_availability"
	findFreeGapsUC "github.com/lexagoldenpost/reavito-sub000/internal/usecase/find_free_gaps"
	getOccupancyGridUC "github.com/lexagoldenpost/reavito-sub000/internal/usecase/get_occupancy_grid"
	"github.com/lexagoldenpost/reavito-sub000/pkg/logger"
	"github.com/lexagoldenpost/reavito-sub000/pkg/metrics"
)

func main() {
	// Подхватываем .env (токен бота), отсутствие файла — не ошибка
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting reavito-sub000...")
	log.Info("Configuration loaded from config.toml (%d properties)", len(cfg.Properties))

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем репозиторий объектов поверх CSV-файлов
	var repoMetrics propertyRepo.MetricsRecorder
	if metricsCollector != nil {
		repoMetrics = metricsCollector
	}
	repository := propertyRepo.NewRepository(cfg.Storage.DataDir, cfg.Properties, repoMetrics)

	// Прогреваем снимок данных: ошибка чтения файлов должна быть видна на старте
	snapshot, err := repository.LoadSnapshot(context.Background())
	if err != nil {
		log.Fatal("Failed to load property data: %v", err)
	}
	for _, skip := range snapshot.Skipped {
		log.Warn("Skipped row: file=%s, line=%d, reason=%s", skip.File, skip.Line, skip.Reason)
	}
	log.Info("Property data loaded (properties=%d, skipped_rows=%d)",
		len(snapshot.Properties), len(snapshot.Skipped))

	// Инициализируем клиента Telegram
	telegram, err := telegramClient.NewClient(
		cfg.Telegram.Token,
		time.Duration(cfg.Telegram.Timeout)*time.Second,
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize Telegram client: %v", err)
	}

	// Инициализируем сервисы
	var relayMetrics relayService.MetricsRecorder
	if metricsCollector != nil {
		relayMetrics = metricsCollector
	}
	propertiesSvc := propertiesService.NewService(repository, log)
	relaySvc := relayService.NewService(telegram, cfg.Telegram.ChannelChatID, relayMetrics, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(repository, log)
	calculateStayCostUseCase := calculateStayCostUC.NewUseCase(
		repository,
		cfg.Booking.AutoDiscountThresholdNights,
		log,
	)
	findFreeGapsUseCase := findFreeGapsUC.NewUseCase(repository, cfg.Booking.MinGapNights, log)
	getOccupancyGridUseCase := getOccupancyGridUC.NewUseCase(repository, log)
	broadcastFreeGapsUseCase := broadcastFreeGapsUC.NewUseCase(
		findFreeGapsUseCase,
		repository,
		telegram,
		cfg.Telegram.ChannelChatID,
		log,
	)

	// Инициализируем handlers
	getProperties := getPropertiesHandler.NewHandler(propertiesSvc, log)
	getOccupiedDates := getOccupiedDatesHandler.NewHandler(propertiesSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	calculateCost := calculateCostHandler.NewHandler(calculateStayCostUseCase, log)
	getFreeGaps := getFreeGapsHandler.NewHandler(findFreeGapsUseCase, log)
	getOccupancyGrid := getOccupancyGridHandler.NewHandler(getOccupancyGridUseCase, log)
	sendRelay := sendRelayHandler.NewHandler(relaySvc, log)
	broadcastFreeGaps := broadcastFreeGapsHandler.NewHandler(broadcastFreeGapsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Список объектов размещения
	api.HandleFunc("/properties", getProperties.Handle).Methods(http.MethodGet)

	// Занятые даты по объекту
	api.HandleFunc("/properties/{propertyId}/occupied-dates",
		getOccupiedDates.Handle).Methods(http.MethodGet)

	// Проверка доступности диапазона дат
	api.HandleFunc("/properties/{propertyId}/availability",
		checkAvailability.Handle).Methods(http.MethodGet)

	// Расчет стоимости проживания
	api.HandleFunc("/properties/{propertyId}/cost",
		calculateCost.Handle).Methods(http.MethodPost)

	// Поиск свободных окон
	api.HandleFunc("/properties/{propertyId}/free-gaps",
		getFreeGaps.Handle).Methods(http.MethodGet)

	// Сетка занятости по всем объектам
	api.HandleFunc("/grid", getOccupancyGrid.Handle).Methods(http.MethodGet)

	// Ретрансляция произвольного JSON в Telegram
	api.HandleFunc("/relay", sendRelay.Handle).Methods(http.MethodPost)

	// Рассылка свободных окон в канал
	api.HandleFunc("/properties/{propertyId}/broadcast/free-gaps",
		broadcastFreeGaps.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
