package telemetry

import (
	"context"
	"testing"

	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/Olpagroup25/insa/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
)

func newTestMeterProvider(t *testing.T) (*MeterProvider, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := NewMeterProviderWithReader(reader, zap.NewNop())
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	return mp, reader
}

func collectSum(t *testing.T, reader *sdkmetric.ManualReader, name string) metricdata.Sum[int64] {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				sum, ok := m.Data.(metricdata.Sum[int64])
				require.True(t, ok, "metric %s is not an int64 sum", name)
				return sum
			}
		}
	}
	t.Fatalf("metric %s not collected", name)
	return metricdata.Sum[int64]{}
}

func TestNewMeterProvider_Disabled(t *testing.T) {
	for _, cfg := range []config.TelemetryConfig{
		{ServiceName: "insa-test"},
		{Enabled: true, ServiceName: "insa-test"},
	} {
		mp, err := NewMeterProvider(context.Background(), cfg, zap.NewNop())
		require.NoError(t, err)
		assert.False(t, mp.IsEnabled())
		assert.NotNil(t, mp.Meter("test"))
		assert.NoError(t, mp.Shutdown(context.Background()))
	}
}

func TestEventMetrics_Handle(t *testing.T) {
	mp, reader := newTestMeterProvider(t)
	assert.True(t, mp.IsEnabled())

	m, err := NewEventMetrics(mp.Meter("insa.events"))
	require.NoError(t, err)
	assert.Nil(t, m.EventTypes())

	confirmed := shared.NewBaseDomainEvent("PickupConfirmed", "StockPicking", uuid.New())
	ctx := context.Background()
	require.NoError(t, m.Handle(ctx, &confirmed))
	require.NoError(t, m.Handle(ctx, &confirmed))
	created := shared.NewBaseDomainEvent("PartnerCreated", "Partner", uuid.New())
	require.NoError(t, m.Handle(ctx, &created))

	sum := collectSum(t, reader, "insa_domain_events_total")
	assert.True(t, sum.IsMonotonic)
	counts := map[string]int64{}
	for _, dp := range sum.DataPoints {
		v, ok := dp.Attributes.Value(AttrEventType)
		require.True(t, ok)
		counts[v.AsString()] = dp.Value
	}
	assert.Equal(t, map[string]int64{"PickupConfirmed": 2, "PartnerCreated": 1}, counts)
}

func TestNewEventMetrics_NilMeter(t *testing.T) {
	_, err := NewEventMetrics(nil)
	assert.ErrorIs(t, err, ErrMeterNil)
}

func TestHistogram_RecordDuration(t *testing.T) {
	mp, reader := newTestMeterProvider(t)
	h, err := NewHistogram(mp.Meter("test"), HistogramOpts{
		Name:       "test_duration_seconds",
		Unit:       "s",
		Boundaries: HTTPDurationBuckets,
	})
	require.NoError(t, err)

	h.RecordDuration(context.Background(), 0, AttrHTTPRoute.String("/my"))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	hist, ok := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(1), hist.DataPoints[0].Count)
	assert.Equal(t, attribute.NewSet(AttrHTTPRoute.String("/my")), hist.DataPoints[0].Attributes)
}
