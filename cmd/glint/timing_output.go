package main

import (
	"fmt"
	"io"

	"glint/internal/observ"
	"glint/internal/pipeline"
)

func printStageTimings(out io.Writer, timings pipeline.Timings) error {
	if timings.Has(pipeline.StageParse) {
		if _, err := fmt.Fprintf(out, "parsed %.1f ms\n", observ.Millis(timings.Duration(pipeline.StageParse))); err != nil {
			return err
		}
	}
	if timings.Has(pipeline.StageCache) {
		if _, err := fmt.Fprintf(out, "cached %.1f ms\n", observ.Millis(timings.Duration(pipeline.StageCache))); err != nil {
			return err
		}
	}
	return nil
}

func printPhaseReport(out io.Writer, report observ.Report) error {
	return report.Write(out)
}
