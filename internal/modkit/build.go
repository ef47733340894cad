package modkit

import (
	"net/http"

	"qanda/internal/modkit/httpkit"
	str "qanda/internal/platform/strings"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.subrouter == nil {
		c.subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		Subrouter: c.subrouter,
		Register:  c.register,
	}
}

// Base carries the built wiring every API module shares
// modules embed it and supply their own register function
type Base struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// NewBase pairs Built options with the module's own route registration
// own runs first, then any WithRegister extension
func NewBase(b Built, ports any, own func(httpkit.Router)) Base {
	external := b.Register
	return Base{
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		ports:     ports,
		subrouter: b.Subrouter,
		register: func(r httpkit.Router) {
			if own != nil {
				own(r)
			}
			if external != nil {
				external(r)
			}
		},
	}
}

// MountRoutes mounts the module routes under its prefix with its middlewares
func (m Base) MountRoutes(r httpkit.Router) {
	r.Route(m.Prefix(), func(rr httpkit.Router) {
		if len(m.mws) > 0 {
			rr.Use(m.mws...)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m Base) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m Base) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m Base) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the port set other modules may consume
func (m Base) Ports() any { return m.ports }
