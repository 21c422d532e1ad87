package property

// MetricsRecorder интерфейс для учёта метрик инжеста
// Передаётся nil, если метрики выключены
type MetricsRecorder interface {
	IncSnapshotLoad(status string)
	IncRowsSkipped(file string, n int)
}
