package db

import (
	"context"
	"database/sql"
	"errors"
)

const nowQuery = "SELECT NOW();"

// Result is the outcome of a single probe. Exactly one of Time or Err is set.
type Result struct {
	Time string
	Err  error
}

// OK reports whether the probe reached the database and read a timestamp.
func (r Result) OK() bool { return r.Err == nil }

// Prober checks database reachability with one fresh connection per call.
type Prober struct {
	cfg  Config
	open OpenFunc
}

func NewProber(cfg Config) *Prober {
	return &Prober{cfg: cfg, open: openMySQL}
}

// Probe opens one connection, runs SELECT NOW(), reads one row and closes
// the connection and handle before returning, whatever the outcome.
func (p *Prober) Probe(ctx context.Context) Result {
	now, err := p.now(ctx)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Time: now}
}

func (p *Prober) now(ctx context.Context) (now string, err error) {
	handle, err := p.open(p.cfg.DSN())
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := handle.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	handle.SetMaxOpenConns(1)

	// the driver's dial timeout stops short of the handshake, so bound the
	// whole connection setup; the query runs on ctx alone
	connCtx, cancel := context.WithTimeout(ctx, ConnectTimeout)
	defer cancel()
	conn, err := handle.Conn(connCtx)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := conn.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	var ts sql.NullString
	if err := conn.QueryRowContext(ctx, nowQuery).Scan(&ts); err != nil {
		return "", err
	}
	if !ts.Valid || ts.String == "" {
		return "", errors.New("SELECT NOW() returned an empty timestamp")
	}
	return ts.String, nil
}
