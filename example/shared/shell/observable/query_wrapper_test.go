package observable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell/observable"
	. "github.com/AntonStoeckl/library-patterns-go/testutil/helper" //nolint:revive
)

func Test_QueryWrapper_Handle_Success(t *testing.T) {
	// arrange
	handler := newMockQueryHandler(mockResult{Value: "test_value"}, nil)
	metricsCollector := NewMetricsCollectorSpy(true)
	tracingCollector := NewTracingCollectorSpy(true)
	contextualLogger := NewContextualLoggerSpy(true)

	wrapper, err := observable.NewQueryWrapper[mockQuery, mockResult](
		handler,
		observable.WithQueryMetrics[mockQuery, mockResult](metricsCollector),
		observable.WithQueryTracing[mockQuery, mockResult](tracingCollector),
		observable.WithQueryContextualLogging[mockQuery, mockResult](contextualLogger),
	)
	require.NoError(t, err)

	// act
	result, err := wrapper.Handle(context.Background(), mockQuery{})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, mockResult{Value: "test_value"}, result)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerCallsMetric).
		WithLabel(shell.LogAttrQueryType, "TestQuery").
		WithStatus(shell.StatusSuccess).
		Assert(), "Should record success metric")
	assert.True(t, metricsCollector.HasDurationRecordForMetric(shell.QueryHandlerDurationMetric).
		WithStatus(shell.StatusSuccess).
		Assert(), "Should record duration metric")
	assert.True(t, tracingCollector.HasFinishedSpan(shell.SpanNameQueryHandle, shell.StatusSuccess))
	assert.True(t, contextualLogger.HasInfoLog(shell.LogMsgQueryStarted))
	assert.True(t, contextualLogger.HasInfoLog(shell.LogMsgQueryCompleted))
}

func Test_QueryWrapper_Handle_Error(t *testing.T) {
	// arrange
	expectedError := errors.New("query failed")
	metricsCollector := NewMetricsCollectorSpy(true)
	contextualLogger := NewContextualLoggerSpy(true)

	wrapper, err := observable.NewQueryWrapper[mockQuery, mockResult](
		newMockQueryHandler(mockResult{}, expectedError),
		observable.WithQueryMetrics[mockQuery, mockResult](metricsCollector),
		observable.WithQueryContextualLogging[mockQuery, mockResult](contextualLogger),
	)
	require.NoError(t, err)

	// act
	_, err = wrapper.Handle(context.Background(), mockQuery{})

	// assert
	assert.ErrorIs(t, err, expectedError)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerCallsMetric).
		WithStatus(shell.StatusError).
		Assert(), "Should record error metric")
	assert.True(t, contextualLogger.HasErrorLog(shell.LogMsgQueryFailed))
}

func Test_QueryWrapper_Handle_Cancellation(t *testing.T) {
	// arrange
	metricsCollector := NewMetricsCollectorSpy(true)

	wrapper, err := observable.NewQueryWrapper[mockQuery, mockResult](
		newMockQueryHandler(mockResult{}, context.Canceled),
		observable.WithQueryMetrics[mockQuery, mockResult](metricsCollector),
	)
	require.NoError(t, err)

	// act
	_, err = wrapper.Handle(context.Background(), mockQuery{})

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerCallsMetric).
		WithStatus(shell.StatusCanceled).
		Assert(), "Should record canceled metric")
}

func Test_QueryWrapper_NewQueryWrapper_NilHandler(t *testing.T) {
	_, err := observable.NewQueryWrapper[mockQuery, mockResult](nil)

	assert.ErrorIs(t, err, observable.ErrNilCoreHandler)
}
