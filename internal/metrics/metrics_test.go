package metrics

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/shop"
)

var _ shop.Recorder = (*EngineRecorder)(nil)

func TestEngineRecorder_ObserveItem(t *testing.T) {
	recorder := NewEngineRecorder()
	normal := string(domain.CategoryNormal)

	advancedBefore := testutil.ToFloat64(ItemsAdvanced.WithLabelValues(normal, "true"))
	lostBefore := testutil.ToFloat64(QualityLost.WithLabelValues(normal))
	pastBefore := testutil.ToFloat64(ItemsPastSellBy.WithLabelValues(normal))

	recorder.ObserveItem(domain.CategoryNormal, true, -4, true)

	assert.Equal(t, advancedBefore+1, testutil.ToFloat64(ItemsAdvanced.WithLabelValues(normal, "true")))
	assert.Equal(t, lostBefore+4, testutil.ToFloat64(QualityLost.WithLabelValues(normal)))
	assert.Equal(t, pastBefore+1, testutil.ToFloat64(ItemsPastSellBy.WithLabelValues(normal)))
}

func TestEngineRecorder_GainsAndZeroDelta(t *testing.T) {
	recorder := NewEngineRecorder()
	brie := string(domain.CategoryAgedBrie)

	gainedBefore := testutil.ToFloat64(QualityGained.WithLabelValues(brie))
	lostBefore := testutil.ToFloat64(QualityLost.WithLabelValues(brie))

	recorder.ObserveItem(domain.CategoryAgedBrie, false, 2, true)
	recorder.ObserveItem(domain.CategoryAgedBrie, false, 0, false)

	assert.Equal(t, gainedBefore+2, testutil.ToFloat64(QualityGained.WithLabelValues(brie)))
	assert.Equal(t, lostBefore, testutil.ToFloat64(QualityLost.WithLabelValues(brie)))
}

func TestEngineRecorder_ObserveDay(t *testing.T) {
	recorder := NewEngineRecorder()
	before := testutil.ToFloat64(DaysAdvanced)

	recorder.ObserveDay(9)

	assert.Equal(t, before+1, testutil.ToFloat64(DaysAdvanced))
	assert.Equal(t, float64(9), testutil.ToFloat64(InventorySize))
}

func TestEngineRecorder_WiredIntoEngine(t *testing.T) {
	backstage := string(domain.CategoryBackstage)
	before := testutil.ToFloat64(ItemsAdvanced.WithLabelValues(backstage, "false"))

	engine := shop.NewEngine(shop.WithRecorder(NewEngineRecorder()))
	engine.AdvanceOneDay([]*domain.Item{
		domain.NewItem(domain.ItemBackstage, 5, 20),
		domain.NewItem(domain.ItemSulfuras, 0, 80),
	})

	assert.Equal(t, before+1, testutil.ToFloat64(ItemsAdvanced.WithLabelValues(backstage, "false")))
}

func TestWriteTextfile(t *testing.T) {
	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      MetricNameDaysAdvanced,
		Help:      HelpTextDaysAdvanced,
	})
	registry.MustRegister(counter)
	counter.Add(3)

	path := filepath.Join(t.TempDir(), "run.prom")
	require.NoError(t, writeTextfile(context.Background(), path, registry))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "gilded_rose_days_advanced_total 3")
}

func TestWriteTextfile_DefaultGatherer(t *testing.T) {
	NewEngineRecorder().ObserveDay(1)

	path := filepath.Join(t.TempDir(), "run.prom")
	require.NoError(t, WriteTextfile(context.Background(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "gilded_rose_days_advanced_total")
}

func TestWriteTextfile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "run.prom")
	err := writeTextfile(context.Background(), path, prometheus.NewRegistry())
	assert.Error(t, err)
}

func TestNewEngineRecorder_InitializesCategorySeries(t *testing.T) {
	NewEngineRecorder()

	name := prometheus.BuildFQName(Namespace, "", MetricNameItemsPastSellBy)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(ItemsPastSellBy, name), len(domain.AllCategories)-1)

	for _, category := range domain.AllCategories {
		if category == domain.CategoryLegendary {
			continue
		}
		assert.GreaterOrEqual(t, testutil.ToFloat64(ItemsPastSellBy.WithLabelValues(string(category))), 0.0, string(category))
	}
}
