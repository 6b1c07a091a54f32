package state

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"

	"selb/config"
)

func TestContextWithEnv(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))

	if env.start.IsZero() {
		t.Error("start time not set")
	}
	if env.Log == nil {
		t.Fatal("env must start with no-op logger")
	}
	env.Log.Info("goes nowhere")

	if env.Cfg != nil || env.Rpt != nil || env.Overwrite {
		t.Errorf("unexpected initial state: %+v", env)
	}
}

func TestEnvFromContext_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for context without env")
		}
	}()
	EnvFromContext(context.Background())
}

func TestEnvFromContext_Shared(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	EnvFromContext(ctx).Stats.Recipes++

	derived, cancel := context.WithCancel(ctx)
	defer cancel()
	if got := EnvFromContext(derived).Stats.Recipes; got != 1 {
		t.Errorf("derived context must share env, got recipes = %d", got)
	}
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := &LocalEnv{start: time.Now().Add(-time.Second)}
	if up := env.Uptime(); up < time.Second || up > time.Minute {
		t.Errorf("Uptime() = %v", up)
	}
}

func TestLocalEnv_StdLog(t *testing.T) {
	var buf bytes.Buffer
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.AddSync(&buf), zap.DebugLevel)
	env := &LocalEnv{Log: zap.New(core)}

	for i := range 2 {
		env.RedirectStdLog()
		if env.undoStd == nil {
			t.Fatalf("cycle %d: redirect not installed", i)
		}
		log.Print("from std log")
		env.RestoreStdLog()
		if env.undoStd != nil {
			t.Fatalf("cycle %d: redirect not removed", i)
		}
	}
	if n := strings.Count(buf.String(), "from std log"); n != 2 {
		t.Errorf("expected 2 redirected lines, got %d:\n%s", n, buf.String())
	}

	// no logger - nothing to redirect
	var empty LocalEnv
	empty.RedirectStdLog()
	empty.RestoreStdLog()
	if empty.undoStd != nil {
		t.Error("redirect must not be installed without logger")
	}
}

func TestStats_Fields(t *testing.T) {
	env := &LocalEnv{
		Cfg:   &config.Config{Version: 1},
		Log:   zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))),
		Stats: Stats{Recipes: 3, Stylesheets: 2, Failed: 1},
	}
	fields := env.Stats.Fields()
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	want := map[string]int64{"recipes": 3, "stylesheets": 2, "failed": 1}
	for _, f := range fields {
		if f.Integer != want[f.Key] {
			t.Errorf("field %s = %d, want %d", f.Key, f.Integer, want[f.Key])
		}
	}
	env.Log.Info("Stats", fields...)
}
