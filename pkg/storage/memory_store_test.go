package storage

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobguard/go-jobguard/pkg/models"
)

func record(id string, score int, verdict models.Verdict, ts time.Time) *Record {
	return &Record{
		ID:         id,
		Timestamp:  ts,
		RiskScore:  score,
		Verdict:    verdict,
		Confidence: models.ConfidenceMedium,
	}
}

func TestMemoryStoreSaveNil(t *testing.T) {
	store := NewMemoryStore(10)
	assert.Error(t, store.Save(nil))
}

func TestMemoryStoreRecentNewestFirst(t *testing.T) {
	store := NewMemoryStore(10)
	base := time.Now().UTC()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Save(record(fmt.Sprintf("r%d", i), i*10, models.VerdictSafe, base.Add(time.Duration(i)*time.Second))))
	}

	recent, err := store.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "r2", recent[0].ID)
	assert.Equal(t, "r1", recent[1].ID)

	all, err := store.Recent(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryStoreRingEviction(t *testing.T) {
	store := NewMemoryStore(3)
	base := time.Now().UTC()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Save(record(fmt.Sprintf("r%d", i), 50, models.VerdictCaution, base.Add(time.Duration(i)*time.Second))))
	}

	recent, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "r4", recent[0].ID)
	assert.Equal(t, "r2", recent[2].ID)

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalAssessments)
}

func TestMemoryStoreStats(t *testing.T) {
	store := NewMemoryStore(10)
	base := time.Now().UTC()

	require.NoError(t, store.Save(record("a", 10, models.VerdictSafe, base)))
	require.NoError(t, store.Save(record("b", 50, models.VerdictCaution, base.Add(time.Second))))
	require.NoError(t, store.Save(record("c", 90, models.VerdictHighRisk, base.Add(2*time.Second))))

	stats, err := store.Stats()
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalAssessments)
	assert.InDelta(t, 50.0, stats.AverageRiskScore, 1e-9)
	assert.Equal(t, 1, stats.VerdictCounts[models.VerdictSafe])
	assert.Equal(t, 1, stats.VerdictCounts[models.VerdictCaution])
	assert.Equal(t, 1, stats.VerdictCounts[models.VerdictHighRisk])
	require.NotNil(t, stats.OldestRecord)
	require.NotNil(t, stats.NewestRecord)
	assert.True(t, stats.OldestRecord.Equal(base))
	assert.True(t, stats.NewestRecord.Equal(base.Add(2*time.Second)))
}

func TestMemoryStoreStatsEmpty(t *testing.T) {
	store := NewMemoryStore(10)

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalAssessments)
	assert.Zero(t, stats.AverageRiskScore)
	assert.Nil(t, stats.OldestRecord)
}

func TestMemoryStoreDefaultCapacity(t *testing.T) {
	store := NewMemoryStore(0)
	assert.Equal(t, DefaultCapacity, store.capacity)
}
