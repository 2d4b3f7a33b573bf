package cache

import (
	"net/http"
	"time"
)

// Entry сохраненный ответ вместе с моментом создания и временем жизни
type Entry struct {
	Key       string        `json:"key"`
	Status    int           `json:"status"`
	Header    http.Header   `json:"header"`
	Body      []byte        `json:"body"`
	ETag      string        `json:"etag"`
	CreatedAt time.Time     `json:"created_at"`
	TTL       time.Duration `json:"ttl"`
}

// IsExpired запись считается отсутствующей начиная с CreatedAt+TTL включительно
func (e *Entry) IsExpired(now time.Time) bool {
	return !now.Before(e.CreatedAt.Add(e.TTL))
}

// Remaining сколько записи осталось жить, не меньше нуля
func (e *Entry) Remaining(now time.Time) time.Duration {
	left := e.CreatedAt.Add(e.TTL).Sub(now)
	if left < 0 {
		return 0
	}
	return left
}
