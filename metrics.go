package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/cs-au-dk/ineq/utils"
)

type systemMetrics struct {
	name    string
	err     error
	elapsed time.Duration
}

// batchMetrics collects the outcome of every system of a batch run.
type batchMetrics struct {
	systems []systemMetrics
}

func newBatchMetrics() *batchMetrics {
	return &batchMetrics{}
}

func (m *batchMetrics) record(name string, err error, elapsed time.Duration) {
	m.systems = append(m.systems, systemMetrics{name, err, elapsed})
}

// Failed is the number of systems that could not be reduced.
func (m *batchMetrics) Failed() (n int) {
	for _, s := range m.systems {
		if s.err != nil {
			n++
		}
	}
	return
}

// Solved is the number of systems that were reduced.
func (m *batchMetrics) Solved() int {
	return len(m.systems) - m.Failed()
}

func (m *batchMetrics) total() (res time.Duration) {
	for _, s := range m.systems {
		res += s.elapsed
	}
	return
}

func colorError(err error) string {
	return utils.CanColorize(color.New(color.FgRed).SprintFunc())("error: " + err.Error())
}

// report prints the summary of the batch. Timings are only printed in
// verbose mode.
func (m *batchMetrics) report(w io.Writer) {
	msg := "================ Results =====================\n"

	solved := utils.CanColorize(color.New(color.FgGreen).SprintFunc())(fmt.Sprint(m.Solved()))
	failed := fmt.Sprint(m.Failed())
	if m.Failed() > 0 {
		failed = utils.CanColorize(color.New(color.FgHiRed).SprintFunc())(failed)
	}
	msg += "Systems reduced: " + solved + "/" + fmt.Sprint(len(m.systems)) + "\n"
	msg += "Systems failed: " + failed + "\n"

	utils.Opts().OnVerbose(func() {
		for _, s := range m.systems {
			outcome := "ok"
			if s.err != nil {
				outcome = "failed"
			}
			msg += fmt.Sprintf("  %s -- %s in %s\n", s.name, outcome, s.elapsed)
		}
		msg += "Time: " + m.total().String() + "\n"
	})

	msg += "================ Results ====================="
	fmt.Fprintln(w, msg)
}
