package device

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Config holds backend configuration passed to device factories.
type Config struct {
	// Type selects the registered backend (e.g. "svg").
	Type string

	// Registers supplies values for animation-register references.
	Registers map[string]string

	// DeferUnresolved keeps unresolved references as placeholders in the
	// output instead of failing the compile.
	DeferUnresolved bool

	// Indent is the serializer indentation unit. Empty uses the backend
	// default.
	Indent string

	// Options contains additional backend-specific options.
	Options map[string]string
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]func(Config, *slog.Logger) Device)
)

// Register adds a device factory to the registry.
// Called by backend implementations in their init() functions.
func Register(name string, factory func(Config, *slog.Logger) Device) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Get retrieves a device factory by name.
func Get(name string) (func(Config, *slog.Logger) Device, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// New creates a device instance based on config type. The logger is passed
// to the backend constructor (nil uses a discard logger).
func New(cfg Config, logger *slog.Logger) (Device, error) {
	if cfg.Type == "" {
		return nil, fmt.Errorf("device type not specified")
	}

	factory, ok := Get(cfg.Type)
	if !ok {
		return nil, &UnknownDeviceError{
			Type:      cfg.Type,
			Available: List(),
		}
	}
	return factory(cfg, logger), nil
}

// List returns all registered device names (sorted).
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a device type is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}

// UnknownDeviceError is returned when an unknown device type is requested.
type UnknownDeviceError struct {
	Type      string
	Available []string
}

func (e *UnknownDeviceError) Error() string {
	return fmt.Sprintf("unknown device type %q (available: %v)", e.Type, e.Available)
}
