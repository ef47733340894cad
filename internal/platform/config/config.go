// Package config handles application configuration via environment variables
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"qanda/internal/platform/logger"

	"github.com/joho/godotenv"
)

// Conf is a namespaced view over environment variables (e.g., "CORE_API_", "SERVICE_PGSQL_")
// Use New() for global access, or Prefix("CORE_API_") for module scopes.
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("CORE_API_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// key composes the fully-qualified env var name
func (c Conf) key(k string) string { return c.prefix + k }

// fail reports an unusable required setting. Configuration errors are fatal:
// the root logger prints the offending key and the process exits with status 1
var fail = func(key, value, msg string) {
	evt := logger.Get().Fatal().Str("key", key)
	if value != "" {
		evt = evt.Str("value", value)
	}
	evt.Msg(msg)
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (default ".env") into the
// process environment without overriding variables that are already set.
// Missing files are not an error
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// Lookup returns the trimmed value and whether it is non-empty
func (c Conf) Lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(c.key(key)))
	return v, v != ""
}

// MustString exits if the given key is missing or empty
func (c Conf) MustString(key string) string {
	v, ok := c.Lookup(key)
	if !ok {
		fail(c.key(key), "", "missing required env")
	}
	return v
}

// MustInt exits if the given key is missing, empty, or not an int
func (c Conf) MustInt(key string) int {
	s := c.MustString(key)
	v, err := strconv.Atoi(s)
	if err != nil {
		fail(c.key(key), s, "invalid int value")
	}
	return v
}

// MustPort returns a Go net/http addr like ":3000" after validation 1..65535
func (c Conf) MustPort(key string) string {
	s := strings.TrimPrefix(c.MustString(key), ":")
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		fail(c.key(key), s, "invalid TCP port; expected 1..65535")
	}
	return ":" + s
}

// Require ensures that all given keys are present (non-empty). Exits otherwise.
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		if _, ok := c.Lookup(k); !ok {
			fail(c.key(k), "", "missing required env")
		}
	}
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	if v, ok := c.Lookup(key); ok {
		return v
	}
	return def
}

// MayInt returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayInt(key string, def int) int {
	s, ok := c.Lookup(key)
	if !ok {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Int("default", def).Msg("invalid int; using default")
	return def
}

// MayPortInt is MayInt for TCP ports; exits on a value outside 1..65535
func (c Conf) MayPortInt(key string, def int) int {
	p := c.MayInt(key, def)
	if p < 1 || p > 65535 {
		fail(c.key(key), strconv.Itoa(p), "invalid TCP port; expected 1..65535")
	}
	return p
}

// MayPort returns a listen addr like ":3000"; the value may carry a leading ":"
func (c Conf) MayPort(key string, def int) string {
	s, ok := c.Lookup(key)
	if !ok {
		return ":" + strconv.Itoa(def)
	}
	s = strings.TrimPrefix(s, ":")
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		fail(c.key(key), s, "invalid TCP port; expected 1..65535")
		return ":" + strconv.Itoa(def)
	}
	return ":" + s
}

// MayBool returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayBool(key string, def bool) bool {
	s, ok := c.Lookup(key)
	if !ok {
		return def
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
	return def
}

// MayDuration returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s, ok := c.Lookup(key)
	if !ok {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
	return def
}
