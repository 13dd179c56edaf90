package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jar0582/procsched/internal/config"
	"github.com/jar0582/procsched/loader"
	"github.com/jar0582/procsched/report"
	"github.com/jar0582/procsched/scheduler"
)

func main() {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	logger := newLogger(os.Stderr, level)
	defer func() { _ = logger.Sync() }()

	if err := config.LoadDotEnv(".env"); err != nil {
		logger.Fatal("loading .env", zap.Error(err))
	}

	a := &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: logger,
		level:  level,
	}
	if err := a.run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		logger.Fatal("procsched failed", zap.Error(err))
	}
}

func newLogger(w io.Writer, level zap.AtomicLevel) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

// app runs one simulation. A non-nil environ replaces the process environment.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	logger  *zap.Logger
	level   zap.AtomicLevel
	environ map[string]string
}

func (a *app) run(args []string) error {
	cfg, err := config.Load(args, a.environ, a.stderr)
	if err != nil {
		return err
	}
	settings, err := cfg.Resolve()
	if err != nil {
		return err
	}
	a.level.SetLevel(settings.LogLevel)
	logger := a.logger.With(zap.String("run_id", uuid.NewString()))

	/* Load and parse processes */
	f, closeFile, err := loader.Open(settings.Input)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeFile(); err != nil {
			logger.Warn("closing scheduling file", zap.Error(err))
		}
	}()

	processes, err := loader.Load(f, settings.Format)
	if err != nil {
		return fmt.Errorf("%w: loading %s", err, settings.Input)
	}
	logger.Info("loaded processes",
		zap.String("file", settings.Input),
		zap.String("format", string(settings.Format)),
		zap.Int("count", len(processes)))

	var recorder *report.Recorder
	if settings.Metrics {
		recorder = report.NewRecorder()
	}

	/* Scheduling */
	for _, policy := range settings.Policies {
		schedule, err := scheduler.Lookup(policy, settings.SJFOptions...)
		if err != nil {
			return err
		}
		completed := schedule(processes)

		summary := report.Summarize(completed)
		logger.Debug("scheduled",
			zap.String("policy", string(policy)),
			zap.Float64("average_wait", summary.AverageWait),
			zap.Float64("average_turnaround", summary.AverageTurnaround),
			zap.Int64("makespan", summary.Makespan),
			zap.Int64("idle", summary.IdleTime))

		if err := report.Render(a.stdout, policy.Title(), completed); err != nil {
			return fmt.Errorf("%w: writing %s schedule", err, policy)
		}
		if recorder != nil {
			recorder.Record(string(policy), completed)
		}
	}

	if recorder != nil {
		recorder.Dump(a.stderr)
	}

	return nil
}
