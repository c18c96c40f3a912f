package helper

import (
	"maps"
	"sync"
	"time"

	"github.com/AntonStoeckl/library-patterns-go/catalog"
)

// SpyMetricRecord represents a recorded metrics call. Duration is set for duration records, Value for value records.
type SpyMetricRecord struct {
	Kind     string
	Metric   string
	Duration time.Duration
	Value    float64
	Labels   map[string]string
}

const (
	spyKindDuration = "duration"
	spyKindCounter  = "counter"
	spyKindValue    = "value"
)

// MetricsCollectorSpy is a catalog.MetricsCollector implementation that captures metrics calls for testing.
type MetricsCollectorSpy struct {
	records     []SpyMetricRecord
	mu          sync.Mutex
	recordCalls bool
}

// NewMetricsCollectorSpy creates a new MetricsCollectorSpy.
// Set recordCalls to true to capture all metrics calls for inspection in tests.
func NewMetricsCollectorSpy(recordCalls bool) *MetricsCollectorSpy {
	return &MetricsCollectorSpy{
		records:     make([]SpyMetricRecord, 0),
		recordCalls: recordCalls,
	}
}

// RecordDuration implements catalog.MetricsCollector.
func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.record(SpyMetricRecord{Kind: spyKindDuration, Metric: metric, Duration: duration, Labels: labels})
}

// IncrementCounter implements catalog.MetricsCollector.
func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.record(SpyMetricRecord{Kind: spyKindCounter, Metric: metric, Labels: labels})
}

// RecordValue implements catalog.MetricsCollector.
func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.record(SpyMetricRecord{Kind: spyKindValue, Metric: metric, Value: value, Labels: labels})
}

func (s *MetricsCollectorSpy) record(record SpyMetricRecord) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// copy labels to avoid external modifications
	record.Labels = maps.Clone(record.Labels)
	s.records = append(s.records, record)
}

// GetRecords returns a copy of all captured records.
func (s *MetricsCollectorSpy) GetRecords() []SpyMetricRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyMetricRecord(nil), s.records...)
}

// CountCounterRecordsForMetric counts how many counter increments exist for a specific metric.
func (s *MetricsCollectorSpy) CountCounterRecordsForMetric(metric string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, record := range s.records {
		if record.Kind == spyKindCounter && record.Metric == metric {
			count++
		}
	}

	return count
}

// LastValueForMetric returns the last recorded value of a gauge metric and whether one exists.
func (s *MetricsCollectorSpy) LastValueForMetric(metric string) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].Kind == spyKindValue && s.records[i].Metric == metric {
			return s.records[i].Value, true
		}
	}

	return 0, false
}

// MetricRecordMatcher provides a fluent interface for checking metric records.
type MetricRecordMatcher struct {
	candidates []SpyMetricRecord
}

// HasDurationRecordForMetric starts a fluent chain to check a duration record.
func (s *MetricsCollectorSpy) HasDurationRecordForMetric(metric string) *MetricRecordMatcher {
	return s.matcherFor(spyKindDuration, metric)
}

// HasCounterRecordForMetric starts a fluent chain to check a counter record.
func (s *MetricsCollectorSpy) HasCounterRecordForMetric(metric string) *MetricRecordMatcher {
	return s.matcherFor(spyKindCounter, metric)
}

func (s *MetricsCollectorSpy) matcherFor(kind, metric string) *MetricRecordMatcher {
	s.mu.Lock()
	defer s.mu.Unlock()

	matcher := &MetricRecordMatcher{}
	for _, record := range s.records {
		if record.Kind == kind && record.Metric == metric {
			matcher.candidates = append(matcher.candidates, record)
		}
	}

	return matcher
}

// WithStatus keeps only records with the specified status label.
func (m *MetricRecordMatcher) WithStatus(status string) *MetricRecordMatcher {
	return m.WithLabel("status", status)
}

// WithLabel keeps only records with the specified label value.
func (m *MetricRecordMatcher) WithLabel(key, value string) *MetricRecordMatcher {
	filtered := m.candidates[:0:0]
	for _, record := range m.candidates {
		if labelValue, exists := record.Labels[key]; exists && labelValue == value {
			filtered = append(filtered, record)
		}
	}

	m.candidates = filtered

	return m
}

// Assert returns true if at least one record satisfied the whole chain.
func (m *MetricRecordMatcher) Assert() bool {
	return len(m.candidates) > 0
}

var _ catalog.MetricsCollector = (*MetricsCollectorSpy)(nil)
