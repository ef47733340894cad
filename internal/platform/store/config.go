package store

import (
	"errors"
	"net"
	"net/url"
	"strconv"
	"time"

	"qanda/internal/platform/config"
	pstrings "qanda/internal/platform/strings"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string
	PG      PGConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// boot guard: ping attempts with exponential backoff, each bounded by PingTimeout
	ConnectRetries int
	PingTimeout    time.Duration
}

// ErrNoPGConfig means neither a DSN nor the discrete connection settings were given
var ErrNoPGConfig = errors.New("postgres not configured: set SERVICE_PGSQL_DBURL or POSTGRES_HOST, POSTGRES_USER and POSTGRES_DB")

// PGFromEnv reads SERVICE_PGSQL_* and falls back to the POSTGRES_* names for the
// connection settings when no DSN is given
func PGFromEnv(root config.Conf) (PGConfig, error) {
	c := root.Prefix("SERVICE_PGSQL_")
	pc := PGConfig{
		Enabled:        true,
		MaxConns:       int32(c.MayInt("MAX_CONNS", 4)),
		LogSQL:         c.MayBool("LOG_SQL", false),
		SlowQueryMs:    c.MayInt("SLOW_MS", 500),
		ConnectRetries: c.MayInt("CONNECT_RETRIES", 6),
		PingTimeout:    c.MayDuration("PING_TIMEOUT", 3*time.Second),
	}

	if dsn := c.MayString("DBURL", ""); dsn != "" {
		pc.URL = dsn
		return pc, nil
	}

	pgEnv := root.Prefix("POSTGRES_")
	pick := func(key string) string {
		return pstrings.FirstNonEmpty(c.MayString(key, ""), pgEnv.MayString(key, ""))
	}
	host, user, db := pick("HOST"), pick("USER"), pick("DB")
	if host == "" || user == "" || db == "" {
		return PGConfig{}, ErrNoPGConfig
	}
	port := pstrings.FirstNonEmpty(pick("PORT"), "5432")
	if _, err := strconv.Atoi(port); err != nil {
		return PGConfig{}, errors.New("postgres port must be numeric: " + port)
	}

	pc.URL = BuildURL(host, port, user, pick("PASSWORD"), db, pstrings.FirstNonEmpty(pick("SSLMODE"), "disable"))
	return pc, nil
}

// BuildURL assembles a postgres DSN with the credentials escaped
func BuildURL(host, port, user, password, db, sslmode string) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + db,
	}
	if password != "" {
		u.User = url.UserPassword(user, password)
	} else {
		u.User = url.User(user)
	}
	if sslmode != "" {
		u.RawQuery = url.Values{"sslmode": []string{sslmode}}.Encode()
	}
	return u.String()
}
