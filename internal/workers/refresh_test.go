package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-content-keeper/internal/config"
	"github.com/MKhiriev/go-content-keeper/internal/logger"
	"github.com/MKhiriev/go-content-keeper/internal/service"
	"github.com/MKhiriev/go-content-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLoader records Load calls and signals each one on calls.
type stubLoader struct {
	entity models.Entity
	err    error

	mu    sync.Mutex
	count int
	calls chan struct{}
}

func newStubLoader(entity models.Entity, err error) *stubLoader {
	return &stubLoader{entity: entity, err: err, calls: make(chan struct{}, 16)}
}

func (s *stubLoader) Entity() models.Entity { return s.entity }

func (s *stubLoader) Load(context.Context) error {
	s.mu.Lock()
	s.count++
	s.mu.Unlock()
	select {
	case s.calls <- struct{}{}:
	default:
	}
	return s.err
}

func (s *stubLoader) loads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

func waitCall(t *testing.T, s *stubLoader) {
	t.Helper()
	select {
	case <-s.calls:
	case <-time.After(2 * time.Second):
		t.Fatalf("%s was not loaded", s.entity)
	}
}

func TestRefreshWorker_LoadsEveryCollectionOnTick(t *testing.T) {
	categories := newStubLoader(models.EntityCategory, nil)
	posts := newStubLoader(models.EntityPost, errors.New("server down"))
	items := newStubLoader(models.EntityItem, nil)

	w := NewRefreshWorker([]service.Loader{categories, posts, items}, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// a failing loader does not stop the others, nor later ticks
	for i := 0; i < 2; i++ {
		waitCall(t, categories)
		waitCall(t, posts)
		waitCall(t, items)
	}

	cancel()
	require.NoError(t, <-done)
	assert.GreaterOrEqual(t, items.loads(), 2)
}

func TestRefreshWorker_StopsWithoutTick(t *testing.T) {
	l := newStubLoader(models.EntityCategory, nil)
	w := NewRefreshWorker([]service.Loader{l}, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, w.Run(ctx))
	assert.Equal(t, 0, l.loads())
}

func TestNewRefreshWorker_DefaultInterval(t *testing.T) {
	w := NewRefreshWorker(nil, 0, logger.Nop())
	assert.Equal(t, config.DefaultRefreshInterval, w.interval)

	w = NewRefreshWorker(nil, -time.Second, logger.Nop())
	assert.Equal(t, config.DefaultRefreshInterval, w.interval)
}
