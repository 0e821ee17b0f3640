package module

import "sync"

// Process-wide registry of module port sets, filled during bootstrap.
// Cross-module lookups after wiring go through PortsAs
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores a port set for a module name, replacing any previous entry
func Register(name string, ports any) {
	mu.Lock()
	reg[name] = ports
	mu.Unlock()
}

// PortsAs fetches and type asserts a port set for name
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
