package stats

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	monthLayout  = "01/2006"
	uptimeLayout = "02/01/2006 15:04"
)

// Brasília, смещение -03:00 без перехода на летнее время
var brasilia = time.FixedZone("BRT", -3*60*60)

type endpointCounters struct {
	count           int64
	totalTime       time.Duration
	lastMinuteCount int64
}

// Registry счетчики запросов по путям и по месяцам, живет в памяти процесса
type Registry struct {
	mu        sync.Mutex
	endpoints map[string]*endpointCounters
	monthly   map[string]int64
	startedAt time.Time
	now       func() time.Time
}

func NewRegistry() *Registry {
	return newRegistry(time.Now)
}

func newRegistry(now func() time.Time) *Registry {
	return &Registry{
		endpoints: make(map[string]*endpointCounters),
		monthly:   make(map[string]int64),
		startedAt: now(),
		now:       now,
	}
}

func (r *Registry) Record(path string, d time.Duration) {
	month := r.now().In(brasilia).Format(monthLayout)

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.endpoints[path]
	if !ok {
		c = &endpointCounters{}
		r.endpoints[path] = c
	}
	c.count++
	c.totalTime += d
	c.lastMinuteCount++
	r.monthly[month]++
}

// ResetMinute обнуляет поминутные счетчики
func (r *Registry) ResetMinute() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.endpoints {
		c.lastMinuteCount = 0
	}
}

// EndpointStat статистика одного пути
type EndpointStat struct {
	Path            string  `json:"path"`
	Count           int64   `json:"count"`
	LastMinuteCount int64   `json:"last_minute_count"`
	AvgTimeMs       float64 `json:"avg_time_ms"`
}

// Snapshot копия счетчиков на момент вызова
type Snapshot struct {
	Since     string           `json:"since"`
	Endpoints []EndpointStat   `json:"endpoints"`
	Monthly   map[string]int64 `json:"monthly"`
}

func (r *Registry) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		Since:     r.startedAt.In(brasilia).Format(uptimeLayout),
		Endpoints: make([]EndpointStat, 0, len(r.endpoints)),
		Monthly:   make(map[string]int64, len(r.monthly)),
	}
	for path, c := range r.endpoints {
		stat := EndpointStat{Path: path, Count: c.count, LastMinuteCount: c.lastMinuteCount}
		if c.count > 0 {
			stat.AvgTimeMs = float64(c.totalTime) / float64(c.count) / float64(time.Millisecond)
		}
		snap.Endpoints = append(snap.Endpoints, stat)
	}
	sort.Slice(snap.Endpoints, func(i, j int) bool { return snap.Endpoints[i].Path < snap.Endpoints[j].Path })

	for month, n := range r.monthly {
		snap.Monthly[month] = n
	}
	return snap
}

// Monthly копия помесячных счетчиков
func (r *Registry) Monthly() map[string]int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]int64, len(r.monthly))
	for month, n := range r.monthly {
		out[month] = n
	}
	return out
}

// RestoreMonthly добавляет сохраненные помесячные счетчики к текущим
func (r *Registry) RestoreMonthly(saved map[string]int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for month, n := range saved {
		r.monthly[month] += n
	}
}

// RunMinuteReset раз в interval обнуляет поминутные счетчики, пока жив ctx
func RunMinuteReset(ctx context.Context, r *Registry, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Debug("minute counter reset stopped")
			return
		case <-ticker.C:
			r.ResetMinute()
		}
	}
}
