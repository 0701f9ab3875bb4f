package core

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eventLog records service lifecycle calls across services
type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) add(event string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *eventLog) get() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

type recordingService struct {
	id       string
	log      *eventLog
	startErr error
}

func (s *recordingService) Start(ctx context.Context) error {
	s.log.add("start:" + s.id)
	return s.startErr
}

func (s *recordingService) Stop() {
	s.log.add("stop:" + s.id)
}

func TestRegistry_StartAllAndStopAllInReverseOrder(t *testing.T) {
	events := &eventLog{}
	registry := NewRegistry()
	registry.Register("cache", &recordingService{id: "cache", log: events})
	registry.Register("prices", &recordingService{id: "prices", log: events})
	registry.Register("api", &recordingService{id: "api", log: events})

	assert.Equal(t, []string{"cache", "prices", "api"}, registry.Names())

	require.NoError(t, registry.StartAll(context.Background()))
	registry.StopAll()

	assert.Equal(t, []string{
		"start:cache", "start:prices", "start:api",
		"stop:api", "stop:prices", "stop:cache",
	}, events.get())
}

func TestRegistry_StartFailureStopsStartedServices(t *testing.T) {
	events := &eventLog{}
	startErr := errors.New("port in use")

	registry := NewRegistry()
	registry.Register("cache", &recordingService{id: "cache", log: events})
	registry.Register("prices", &recordingService{id: "prices", log: events})
	registry.Register("api", &recordingService{id: "api", log: events, startErr: startErr})

	err := registry.StartAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, startErr)
	assert.Contains(t, err.Error(), "api")

	assert.Equal(t, []string{
		"start:cache", "start:prices", "start:api",
		"stop:prices", "stop:cache",
	}, events.get())

	// nothing left to stop
	registry.StopAll()
	assert.Len(t, events.get(), 5)
}

func TestRegistry_StopBeforeStart(t *testing.T) {
	events := &eventLog{}
	registry := NewRegistry()
	registry.Register("cache", &recordingService{id: "cache", log: events})

	registry.StopAll()

	assert.Empty(t, events.get())
}
