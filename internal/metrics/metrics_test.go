package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	Reset()

	ParseCompleted()
	ParseCompleted()
	ClarificationRequired()
	ResolutionComplete()
	ResolutionIncomplete()
	SnapshotInspected()

	m := Get()
	assert.Equal(t, uint64(2), m.ParsesTotal)
	assert.Equal(t, uint64(1), m.ClarificationsRequired)
	assert.Equal(t, uint64(1), m.ResolutionsComplete)
	assert.Equal(t, uint64(1), m.ResolutionsIncomplete)
	assert.Equal(t, uint64(1), m.SnapshotsInspected)
}

func TestReset(t *testing.T) {
	ParseCompleted()
	Reset()

	assert.Equal(t, Metrics{}, Get())
}

func TestConcurrentIncrements(t *testing.T) {
	Reset()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ParseCompleted()
			SnapshotInspected()
		}()
	}
	wg.Wait()

	m := Get()
	assert.Equal(t, uint64(50), m.ParsesTotal)
	assert.Equal(t, uint64(50), m.SnapshotsInspected)
}
