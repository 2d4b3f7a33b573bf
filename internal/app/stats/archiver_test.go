package stats

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeObjectStore хранилище без сохраненного архива.
// Первые getFailures чтений падают с getErr.
type fakeObjectStore struct {
	mu             sync.Mutex
	bucket, object string
	payload        []byte
	contentType    string
	puts           int
	putErr         error
	getErr         error
	getFailures    int
}

func (s *fakeObjectStore) PutObject(_ context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return minio.UploadInfo{}, s.putErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	s.puts++
	s.bucket, s.object, s.payload, s.contentType = bucketName, objectName, data, opts.ContentType
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: objectSize}, nil
}

func (s *fakeObjectStore) GetObject(context.Context, string, string, minio.GetObjectOptions) (*minio.Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getFailures > 0 {
		s.getFailures--
		return nil, s.getErr
	}
	return nil, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}
}

func (s *fakeObjectStore) putCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puts
}

func restoredArchiver(t *testing.T, store ObjectStore, r *Registry) *Archiver {
	t.Helper()
	a := NewArchiver(store, "api-stats", r)
	require.NoError(t, a.Restore(context.Background()))
	require.True(t, a.Restored())
	return a
}

func TestArchiverSave(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	r := newRegistry(func() time.Time { return now })
	r.Record("/convenio", time.Millisecond)
	r.RestoreMonthly(map[string]int64{"06/2025": 9})

	store := &fakeObjectStore{}
	require.NoError(t, restoredArchiver(t, store, r).Save(context.Background()))

	assert.Equal(t, "api-stats", store.bucket)
	assert.Equal(t, "stats/monthly.json", store.object)
	assert.Equal(t, "application/json", store.contentType)
	assert.JSONEq(t, `{"06/2025": 9, "07/2025": 1}`, string(store.payload))
}

func TestArchiverSaveError(t *testing.T) {
	store := &fakeObjectStore{putErr: errors.New("access denied")}
	err := restoredArchiver(t, store, NewRegistry()).Save(context.Background())
	assert.ErrorContains(t, err, "access denied")
}

func TestArchiverSaveRefusedAfterFailedRestore(t *testing.T) {
	store := &fakeObjectStore{getErr: errors.New("connection refused"), getFailures: 1}
	r := NewRegistry()
	r.Record("/convenio", time.Millisecond)
	a := NewArchiver(store, "api-stats", r)

	assert.ErrorContains(t, a.Restore(context.Background()), "connection refused")
	assert.False(t, a.Restored())
	assert.ErrorIs(t, a.Save(context.Background()), ErrNotRestored)
	assert.Zero(t, store.putCount())
}

func TestArchiverRunRetriesRestore(t *testing.T) {
	store := &fakeObjectStore{getErr: errors.New("connection refused"), getFailures: 2}
	r := NewRegistry()
	r.Record("/convenio", time.Millisecond)
	a := NewArchiver(store, "api-stats", r)
	require.Error(t, a.Restore(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.Run(ctx, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return store.putCount() > 0 }, time.Second, 5*time.Millisecond)
	assert.True(t, a.Restored())
	cancel()
	<-done
}

func TestArchiverRunSkipsFinalSaveWithoutRestore(t *testing.T) {
	store := &fakeObjectStore{getErr: errors.New("connection refused"), getFailures: 1 << 20}
	a := NewArchiver(store, "api-stats", NewRegistry())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()
	<-done

	assert.False(t, a.Restored())
	assert.Zero(t, store.putCount())
}

func TestArchiverRestoreMissingObject(t *testing.T) {
	r := NewRegistry()
	restoredArchiver(t, &fakeObjectStore{}, r)
	assert.Empty(t, r.Monthly())
}

func TestDecodeMonthly(t *testing.T) {
	saved, err := decodeMonthly(strings.NewReader(`{"01/2025": 10, "02/2025": 4}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"01/2025": 10, "02/2025": 4}, saved)

	_, err = decodeMonthly(strings.NewReader(`[1,2]`))
	assert.Error(t, err)
}
