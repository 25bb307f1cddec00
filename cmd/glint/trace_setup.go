package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"glint/internal/trace"
)

type loggerKey struct{}

// loggerFrom returns the logger installed by setupTracing, or nil.
func loggerFrom(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return nil
	}
	l, _ := ctx.Value(loggerKey{}).(*slog.Logger)
	return l
}

// setupTracing inspects trace-related flags and initializes the tracer.
// It returns a cleanup function and an error if initialization fails.
func setupTracing(cmd *cobra.Command) (func(), error) {
	root := cmd.Root()

	// Read trace configuration from flags
	traceOutput, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := root.PersistentFlags().GetString("trace-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	ringSize, err := root.PersistentFlags().GetInt("trace-ring-size")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}
	heartbeatInterval, err := root.PersistentFlags().GetDuration("trace-heartbeat")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-heartbeat flag: %w", err)
	}
	logPath, err := root.PersistentFlags().GetString("log-file")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-file flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace level: %w", err)
	}
	// bare --trace means phase
	if level == trace.LevelOff && traceOutput != "" {
		level = trace.LevelPhase
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var tracers []trace.Tracer
	if level != trace.LevelOff {
		mode, modeErr := trace.ParseMode(modeStr)
		if modeErr != nil {
			return nil, fmt.Errorf("invalid trace mode: %w", modeErr)
		}
		tracer, tracerErr := trace.New(trace.Config{
			Level:      level,
			Mode:       mode,
			OutputPath: traceOutput,
			RingSize:   ringSize,
			Heartbeat:  heartbeatInterval,
		})
		if tracerErr != nil {
			return nil, fmt.Errorf("failed to create tracer: %w", tracerErr)
		}
		tracers = append(tracers, tracer)
	}

	var logFile *os.File
	if logPath != "" {
		logFile, err = os.Create(logPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger := trace.NewLogger(nil, logFile, slog.LevelDebug)
		ctx = context.WithValue(ctx, loggerKey{}, logger)
		slogLevel := level
		if slogLevel == trace.LevelOff {
			slogLevel = trace.LevelPhase
		}
		tracers = append(tracers, trace.NewSlogTracer(logger, slogLevel))
	}

	var tracer trace.Tracer = trace.Nop
	switch len(tracers) {
	case 0:
	case 1:
		tracer = tracers[0]
	default:
		tracer = trace.NewMultiTracer(max(level, trace.LevelPhase), tracers...)
	}

	// Attach tracer to context
	ctx = trace.WithTracer(ctx, tracer)
	cmd.SetContext(ctx)
	root.SetContext(ctx)

	// Start heartbeat if configured
	var heartbeat *trace.Heartbeat
	if heartbeatInterval > 0 && tracer.Enabled() {
		heartbeat = trace.StartHeartbeat(tracer, heartbeatInterval)
	}

	cleanup := func() {
		// Stop heartbeat first
		if heartbeat != nil {
			heartbeat.Stop()
		}
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
		if logFile != nil {
			if err := logFile.Close(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "log: close error: %v\n", err)
			}
		}
	}
	return cleanup, nil
}
