package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"glint/internal/driver"
	"glint/internal/pipeline"
	"glint/internal/ui"
)

type checkOutcome struct {
	result *driver.CheckResult
	err    error
}

// runCheckWithUI runs driver.Check in the background while a progress model
// renders its events on out.
func runCheckWithUI(ctx context.Context, out io.Writer, title string, files []string, dirs []string, opts driver.CheckOptions) (*driver.CheckResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		opts.Progress = pipeline.ChannelSink{Ch: events}
		res, err := driver.Check(ctx, dirs, opts)
		outcomeCh <- checkOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// the model stopped reading: on ctrl+c cancel the check and drain the events
	cancel()
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
