package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// ConsoleReporter renders a job's per-task status as an aligned text table.
type ConsoleReporter struct {
	// No fields needed for console rendering
}

// NewConsoleReporter creates a new console reporter.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{}
}

// Render writes the job's tasks, optionally filtered by glob patterns
// against task names.
func (r *ConsoleReporter) Render(w io.Writer, job Job, globs ...string) error {
	tasks, err := FilterTasks(job, globs)
	if err != nil {
		return err
	}

	table := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(table, "TASK\tPROVIDER\tSTATE\tARTIFACTS\n")
	for _, task := range tasks {
		fmt.Fprintf(table, "%s\t%s\t%s\t%d/%d\n",
			task.Name, task.Provider, task.State,
			task.UploadedArtifacts(), len(task.Artifacts))
	}

	return table.Flush()
}
