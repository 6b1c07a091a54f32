// Package state keeps program wide state shared by commands through context.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"

	"selb/config"
)

type envKey struct{}

// LocalEnv is everything a command needs: configuration, debug report,
// logger and command line switches.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// build: replace existing stylesheets
	Overwrite bool

	Stats Stats

	start   time.Time
	undoStd func()
}

// Stats counts processed recipes for the final program log line.
type Stats struct {
	Recipes     int
	Stylesheets int
	Failed      int
}

// Fields returns stats as log fields.
func (s Stats) Fields() []zap.Field {
	return []zap.Field{zap.Int("recipes", s.Recipes), zap.Int("stylesheets", s.Stylesheets), zap.Int("failed", s.Failed)}
}

// ContextWithEnv returns ctx carrying fresh LocalEnv.
func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

// EnvFromContext returns LocalEnv stored by ContextWithEnv. Missing env is a
// program error.
func EnvFromContext(ctx context.Context) *LocalEnv {
	env, ok := ctx.Value(envKey{}).(*LocalEnv)
	if !ok {
		panic("state: context does not carry LocalEnv")
	}
	return env
}

// Uptime returns time passed since env was created.
func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// RedirectStdLog sends standard library log output to e.Log.
func (e *LocalEnv) RedirectStdLog() {
	if e.Log != nil {
		e.undoStd = zap.RedirectStdLog(e.Log)
	}
}

// RestoreStdLog flushes e.Log and undoes RedirectStdLog.
func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.undoStd != nil {
		e.undoStd()
		e.undoStd = nil
	}
}
