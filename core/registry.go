package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Interface defines a common interface for all services
type Interface interface {
	Start(ctx context.Context) error
	Stop()
}

type entry struct {
	name    string
	service Interface
}

// Registry starts services in registration order and stops them in reverse
type Registry struct {
	services []entry
	started  int
}

// NewRegistry creates a new core registry
func NewRegistry() *Registry {
	return &Registry{
		services: make([]entry, 0),
	}
}

// Register adds a named service to the registry
func (sr *Registry) Register(name string, service Interface) {
	sr.services = append(sr.services, entry{name: name, service: service})
}

// Names returns the registered service names in start order
func (sr *Registry) Names() []string {
	names := make([]string, 0, len(sr.services))
	for _, e := range sr.services {
		names = append(names, e.name)
	}
	return names
}

// StartAll starts all registered services. If one fails, the services
// already started are stopped again and the error is returned.
func (sr *Registry) StartAll(ctx context.Context) error {
	for i, e := range sr.services {
		if err := e.service.Start(ctx); err != nil {
			sr.started = i
			sr.StopAll()
			return fmt.Errorf("failed to start %s: %w", e.name, err)
		}
		log.Debug().Str("service", e.name).Msg("Registry: service started")
	}
	sr.started = len(sr.services)
	return nil
}

// StopAll stops every started service in reverse order
func (sr *Registry) StopAll() {
	for i := sr.started - 1; i >= 0; i-- {
		sr.services[i].service.Stop()
		log.Debug().Str("service", sr.services[i].name).Msg("Registry: service stopped")
	}
	sr.started = 0
}
