// Package performance provides lightweight operation timing for
// portfolio-server request handling and storage access.
package performance

import (
	"sync"
	"time"

	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
)

// Marker represents a single performance measurement for an operation
type Marker struct {
	Operation string         `json:"operation"` // e.g., "auth:login", "content:projects:list"
	StartTime time.Time      `json:"startTime"`
	EndTime   time.Time      `json:"endTime"`
	Duration  time.Duration  `json:"duration"`
	Success   bool           `json:"success"`
	Error     string         `json:"error,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Completed bool           `json:"completed"`

	tracker *Tracker
}

// Complete marks the operation as finished and records final metrics
func (m *Marker) Complete() {
	if m.Completed {
		return // Prevent double completion
	}

	m.EndTime = time.Now()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.Completed = true

	if m.tracker != nil {
		m.tracker.record(m)
	}
}

// SetSuccess marks the operation as successful or failed
func (m *Marker) SetSuccess(success bool) {
	m.Success = success
}

// SetError sets an error message and marks the operation as failed
func (m *Marker) SetError(err error) {
	if err != nil {
		m.Error = err.Error()
		m.Success = false
	}
}

// AddMetadata adds key-value metadata to the marker
func (m *Marker) AddMetadata(key string, value any) {
	if m.Metadata == nil {
		m.Metadata = make(map[string]any)
	}
	m.Metadata[key] = value
}

// Tracker retains recent markers and reports slow operations
type Tracker struct {
	mu      sync.Mutex
	recent  []*Marker
	maxKeep int

	totalOps  int64
	failedOps int64

	slowThreshold time.Duration
	logger        *logging.ChanneledLogger
}

// NewTracker creates a performance tracker. The logger may be nil, in which
// case slow operations are tracked but not reported.
func NewTracker(logger *logging.ChanneledLogger) *Tracker {
	return &Tracker{
		recent:        make([]*Marker, 0, 256),
		maxKeep:       256,
		slowThreshold: 500 * time.Millisecond,
		logger:        logger,
	}
}

// StartOperation creates and tracks a new performance marker for an operation
func (t *Tracker) StartOperation(operation string) *Marker {
	return &Marker{
		Operation: operation,
		StartTime: time.Now(),
		Metadata:  make(map[string]any),
		Success:   true, // Assume success until proven otherwise
		tracker:   t,
	}
}

func (t *Tracker) record(m *Marker) {
	t.mu.Lock()
	t.totalOps++
	if !m.Success {
		t.failedOps++
	}
	t.recent = append(t.recent, m)
	if len(t.recent) > t.maxKeep {
		t.recent = t.recent[len(t.recent)-t.maxKeep:]
	}
	t.mu.Unlock()

	if t.logger != nil && m.Duration >= t.slowThreshold {
		t.logger.Perf().Warn("Slow operation detected",
			"operation", m.Operation,
			"duration", m.Duration.String(),
			"success", m.Success)
	}
}

// Stats is a point-in-time summary of tracked operations
type Stats struct {
	TotalOperations  int64         `json:"totalOperations"`
	FailedOperations int64         `json:"failedOperations"`
	AverageDuration  time.Duration `json:"averageDuration"`
	SlowOperations   int           `json:"slowOperations"`
}

// GetStats summarizes the retained markers
func (t *Tracker) GetStats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	stats := Stats{
		TotalOperations:  t.totalOps,
		FailedOperations: t.failedOps,
	}

	var total time.Duration
	for _, m := range t.recent {
		total += m.Duration
		if m.Duration >= t.slowThreshold {
			stats.SlowOperations++
		}
	}
	if len(t.recent) > 0 {
		stats.AverageDuration = total / time.Duration(len(t.recent))
	}
	return stats
}
