package module

import "sync"

// process wide port registry filled while main composes modules
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores the port set of every module under its name
func Register(mods ...Module) {
	mu.Lock()
	defer mu.Unlock()
	for _, m := range mods {
		if m != nil {
			reg[m.Name()] = m.Ports()
		}
	}
}

// PortsAs fetches and type asserts the port set registered for name
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	out, ok2 := v.(T)
	return out, ok && ok2
}

// Names lists registered module names
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(reg))
	for k := range reg {
		out = append(out, k)
	}
	return out
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
