package property

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lexagoldenpost/reavito-sub000/internal/config"
	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
)

// SkipReason описывает отброшенную при инжесте строку CSV
// Ядро расчётов некорректных строк не видит: фильтрация происходит здесь
type SkipReason struct {
	File   string
	Line   int
	Reason string
}

// Snapshot консистентный снимок всех объектов на момент загрузки
type Snapshot struct {
	Properties map[string]*domain.Property
	Order      []string // ID объектов в порядке конфигурации
	Skipped    []SkipReason
}

// Repository читает брони и ценовые правила объектов из плоских CSV-файлов
// Снимок перестраивается целиком на каждый запрос, инкрементальных изменений нет
type Repository struct {
	dataDir    string
	properties []config.PropertyConfig
	metrics    MetricsRecorder // может быть nil
}

// NewRepository создает новый экземпляр CSV-репозитория
func NewRepository(dataDir string, properties []config.PropertyConfig, metrics MetricsRecorder) *Repository {
	return &Repository{
		dataDir:    dataDir,
		properties: properties,
		metrics:    metrics,
	}
}

// LoadSnapshot загружает снимок всех сконфигурированных объектов
// Некорректные строки не прерывают загрузку, а попадают в отчёт Skipped
func (r *Repository) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	snapshot := &Snapshot{
		Properties: make(map[string]*domain.Property, len(r.properties)),
	}

	for _, pc := range r.properties {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		prop, skipped, err := r.loadProperty(pc)
		if err != nil {
			r.recordLoad("error", nil)
			return nil, err
		}

		snapshot.Properties[pc.ID] = prop
		snapshot.Order = append(snapshot.Order, pc.ID)
		snapshot.Skipped = append(snapshot.Skipped, skipped...)
	}

	r.recordLoad("ok", snapshot.Skipped)
	return snapshot, nil
}

// GetProperty загружает снимок одного объекта по id
// Отчёт об отброшенных строках уходит только в метрики: ядро расчётов его не видит
func (r *Repository) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, pc := range r.properties {
		if pc.ID == id {
			prop, skipped, err := r.loadProperty(pc)
			if err != nil {
				r.recordLoad("error", nil)
				return nil, err
			}
			r.recordLoad("ok", skipped)
			return prop, nil
		}
	}

	return nil, fmt.Errorf("%w: id=%s", ErrPropertyNotFound, id)
}

func (r *Repository) recordLoad(status string, skipped []SkipReason) {
	if r.metrics == nil {
		return
	}

	r.metrics.IncSnapshotLoad(status)

	byFile := make(map[string]int)
	for _, s := range skipped {
		byFile[s.File]++
	}
	for file, n := range byFile {
		r.metrics.IncRowsSkipped(file, n)
	}
}

func (r *Repository) loadProperty(pc config.PropertyConfig) (*domain.Property, []SkipReason, error) {
	var skipped []SkipReason

	bookingsPath := filepath.Join(r.dataDir, pc.BookingsFile)
	bookings, bookingsSkipped, err := r.loadBookings(bookingsPath)
	if err != nil {
		return nil, nil, err
	}
	skipped = append(skipped, bookingsSkipped...)

	pricesPath := filepath.Join(r.dataDir, pc.PricesFile)
	rules, pricesSkipped, err := r.loadPriceRules(pricesPath)
	if err != nil {
		return nil, nil, err
	}
	skipped = append(skipped, pricesSkipped...)

	return &domain.Property{
		ID:          pc.ID,
		DisplayName: pc.Name,
		Bookings:    bookings,
		PriceRules:  rules,
	}, skipped, nil
}

func (r *Repository) loadBookings(path string) ([]domain.BookingInterval, []SkipReason, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, nil, err
	}

	file := filepath.Base(path)
	var bookings []domain.BookingInterval
	var skipped []SkipReason

	for i, record := range records {
		// Первая строка — заголовок
		if i == 0 {
			continue
		}

		booking, err := parseBookingRow(record)
		if err != nil {
			skipped = append(skipped, SkipReason{File: file, Line: i + 1, Reason: err.Error()})
			continue
		}

		bookings = append(bookings, booking)
	}

	return bookings, skipped, nil
}

func (r *Repository) loadPriceRules(path string) ([]domain.PriceRule, []SkipReason, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, nil, err
	}

	file := filepath.Base(path)
	var rules []domain.PriceRule
	var skipped []SkipReason

	for i, record := range records {
		if i == 0 {
			continue
		}

		rule, err := parsePriceRow(record)
		if err != nil {
			skipped = append(skipped, SkipReason{File: file, Line: i + 1, Reason: err.Error()})
			continue
		}

		// Порядок правил сохраняется как в файле: разрешение цены — first match wins
		rules = append(rules, rule)
	}

	return rules, skipped, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenFile, path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	// Количество колонок проверяем сами, чтобы битая строка не валила весь файл
	reader.FieldsPerRecord = -1

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
		}
		records = append(records, record)
	}

	return records, nil
}
