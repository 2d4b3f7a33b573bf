package stats

import "time"

// Collector принимает замер одного обработанного запроса
type Collector interface {
	Record(path string, d time.Duration)
}

// Multi раздает замер нескольким сборщикам
type Multi []Collector

func (m Multi) Record(path string, d time.Duration) {
	for _, c := range m {
		c.Record(path, d)
	}
}
