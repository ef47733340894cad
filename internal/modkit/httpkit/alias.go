// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "qanda/internal/platform/net/http"
	"qanda/internal/platform/net/http/bind"
)

type (
	// Response is the HTTP response type
	Response = phttp.Response
	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// Call adapts a body-less handler; a returned Response is written as is, anything else as 200
func Call(fn func(*http.Request) (any, error)) phttp.Handler {
	return phttp.Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}

// PathID reads and validates the numeric path parameter name
func PathID(r *http.Request, name string) (int64, error) {
	return bind.ParseID(phttp.Param(r, name), name)
}
