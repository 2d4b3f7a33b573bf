package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

const monthlyObject = "stats/monthly.json"

// ErrNotRestored архив еще не прочитан, запись затерла бы сохраненные месяцы
var ErrNotRestored = errors.New("monthly stats not restored yet")

// ObjectStore часть клиента MinIO, нужная архиву
type ObjectStore interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error)
}

// Archiver сохраняет помесячные счетчики в MinIO, чтобы они переживали рестарт
type Archiver struct {
	store    ObjectStore
	bucket   string
	registry *Registry
	restored atomic.Bool
}

func NewArchiver(store ObjectStore, bucket string, registry *Registry) *Archiver {
	return &Archiver{store: store, bucket: bucket, registry: registry}
}

// Save выгружает текущие помесячные счетчики.
// До успешного Restore ничего не пишет.
func (a *Archiver) Save(ctx context.Context) error {
	if !a.restored.Load() {
		return ErrNotRestored
	}

	data, err := json.Marshal(a.registry.Monthly())
	if err != nil {
		return fmt.Errorf("encode monthly stats: %w", err)
	}

	_, err = a.store.PutObject(ctx, a.bucket, monthlyObject, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("upload monthly stats: %w", err)
	}
	return nil
}

// Restore подгружает ранее сохраненные счетчики. Отсутствие объекта не ошибка.
func (a *Archiver) Restore(ctx context.Context) error {
	obj, err := a.store.GetObject(ctx, a.bucket, monthlyObject, minio.GetObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return a.markEmpty()
		}
		return fmt.Errorf("open monthly stats: %w", err)
	}
	defer obj.Close()

	saved, err := decodeMonthly(obj)
	if err != nil {
		if isNoSuchKey(err) {
			return a.markEmpty()
		}
		return err
	}

	a.registry.RestoreMonthly(saved)
	a.restored.Store(true)
	logrus.Infof("restored monthly stats for %d months", len(saved))
	return nil
}

// Restored сообщает, прочитан ли архив
func (a *Archiver) Restored() bool {
	return a.restored.Load()
}

func (a *Archiver) markEmpty() error {
	logrus.Info("no archived monthly stats yet")
	a.restored.Store(true)
	return nil
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}

func decodeMonthly(r io.Reader) (map[string]int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	saved := make(map[string]int64)
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("decode monthly stats: %w", err)
	}
	return saved, nil
}

// Run сохраняет счетчики каждые interval и еще раз при остановке.
// Пока архив не прочитан, на каждом тике повторяет Restore вместо записи.
func (a *Archiver) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if !a.restored.Load() {
				logrus.Warn("monthly stats were never restored, skipping final archive")
				return
			}
			saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := a.Save(saveCtx); err != nil {
				logrus.Errorf("final stats archive failed: %v", err)
			}
			cancel()
			return
		case <-ticker.C:
			if !a.restored.Load() {
				if err := a.Restore(ctx); err != nil {
					logrus.Warnf("stats restore retry failed: %v", err)
					continue
				}
			}
			if err := a.Save(ctx); err != nil {
				logrus.Errorf("stats archive failed: %v", err)
			}
		}
	}
}
