package stats

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRecord(t *testing.T) {
	now := time.Date(2025, 2, 10, 15, 0, 0, 0, time.UTC)
	r := newRegistry(func() time.Time { return now })

	r.Record("/convenio", 10*time.Millisecond)
	r.Record("/convenio", 30*time.Millisecond)
	r.Record("/empenho", 5*time.Millisecond)

	snap := r.Snapshot()
	require.Len(t, snap.Endpoints, 2)

	assert.Equal(t, "/convenio", snap.Endpoints[0].Path)
	assert.Equal(t, int64(2), snap.Endpoints[0].Count)
	assert.Equal(t, int64(2), snap.Endpoints[0].LastMinuteCount)
	assert.InDelta(t, 20.0, snap.Endpoints[0].AvgTimeMs, 0.001)

	assert.Equal(t, map[string]int64{"02/2025": 3}, snap.Monthly)
	assert.Equal(t, "10/02/2025 12:00", snap.Since)
}

func TestRegistryMonthUsesBrasiliaOffset(t *testing.T) {
	// 02:00 UTC первого марта это еще февраль в Бразилиа
	now := time.Date(2025, 3, 1, 2, 0, 0, 0, time.UTC)
	r := newRegistry(func() time.Time { return now })

	r.Record("/proposta", time.Millisecond)
	now = time.Date(2025, 3, 1, 3, 0, 0, 0, time.UTC)
	r.Record("/proposta", time.Millisecond)

	assert.Equal(t, map[string]int64{"02/2025": 1, "03/2025": 1}, r.Monthly())
}

func TestRegistryResetMinute(t *testing.T) {
	r := NewRegistry()
	r.Record("/convenio", time.Millisecond)
	r.Record("/convenio", time.Millisecond)

	r.ResetMinute()

	snap := r.Snapshot()
	require.Len(t, snap.Endpoints, 1)
	assert.Equal(t, int64(2), snap.Endpoints[0].Count)
	assert.Zero(t, snap.Endpoints[0].LastMinuteCount)
}

func TestRegistryRestoreMonthly(t *testing.T) {
	now := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	r := newRegistry(func() time.Time { return now })
	r.Record("/convenio", time.Millisecond)

	r.RestoreMonthly(map[string]int64{"04/2025": 120, "05/2025": 30})

	assert.Equal(t, map[string]int64{"04/2025": 120, "05/2025": 31}, r.Monthly())
}

func TestRegistryConcurrentRecord(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Record("/emenda", time.Microsecond)
			}
		}()
	}
	wg.Wait()

	snap := r.Snapshot()
	require.Len(t, snap.Endpoints, 1)
	assert.Equal(t, int64(2000), snap.Endpoints[0].Count)
}

func TestRunMinuteReset(t *testing.T) {
	r := NewRegistry()
	r.Record("/convenio", time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		RunMinuteReset(ctx, r, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return r.Snapshot().Endpoints[0].LastMinuteCount == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

type countingCollector struct{ paths []string }

func (c *countingCollector) Record(path string, _ time.Duration) { c.paths = append(c.paths, path) }

func TestMulti(t *testing.T) {
	a, b := &countingCollector{}, &countingCollector{}
	Multi{a, b}.Record("/pagamento", time.Millisecond)

	assert.Equal(t, []string{"/pagamento"}, a.paths)
	assert.Equal(t, []string{"/pagamento"}, b.paths)
}
