// Package report renders CI job status into console, email and PR-comment
// output.
package report

import (
	"path"
	"sort"
)

// State is the combined CI state of a task.
type State string

// Task states, in display priority order.
const (
	StateFailure State = "failure"
	StateError   State = "error"
	StatePending State = "pending"
	StateSuccess State = "success"
)

// StateOrder fixes the grouping order used by the reporters.
var StateOrder = []State{StateFailure, StateError, StatePending, StateSuccess}

// Artifact is an expected build artifact of a task: a file pattern and, when
// resolved, its upload URL.
type Artifact struct {
	Pattern string `yaml:"pattern"`
	// UploadedURL is empty while the artifact is missing.
	UploadedURL string `yaml:"uploaded_url,omitempty"`
}

// Uploaded reports whether the artifact has been resolved to an upload.
func (a Artifact) Uploaded() bool {
	return a.UploadedURL != ""
}

// Task is a single named CI task of a job.
type Task struct {
	Name string `yaml:"name"`
	// Provider is the CI provider running the task (e.g. "github").
	Provider string `yaml:"provider"`
	// Branch is the per-task branch the provider builds.
	Branch    string     `yaml:"branch"`
	State     State      `yaml:"state"`
	Artifacts []Artifact `yaml:"artifacts,omitempty"`
}

// UploadedArtifacts counts the resolved artifacts of the task.
func (t Task) UploadedArtifacts() int {
	count := 0
	for _, artifact := range t.Artifacts {
		if artifact.Uploaded() {
			count++
		}
	}
	return count
}

// Job is a named collection of CI tasks.
type Job struct {
	Name  string          `yaml:"name"`
	Tasks map[string]Task `yaml:"tasks"`
}

// SortedTaskNames returns the task names in lexical order.
func (j Job) SortedTaskNames() []string {
	names := make([]string, 0, len(j.Tasks))
	for name := range j.Tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TasksByState groups the job's tasks by state, each group sorted by name.
func (j Job) TasksByState() map[State][]Task {
	grouped := make(map[State][]Task)
	for _, name := range j.SortedTaskNames() {
		task := j.Tasks[name]
		grouped[task.State] = append(grouped[task.State], task)
	}
	return grouped
}

// FilterTasks returns the job's tasks whose names match any of the glob
// patterns, sorted by name. Without patterns every task matches.
func FilterTasks(job Job, globs []string) ([]Task, error) {
	var tasks []Task
	for _, name := range job.SortedTaskNames() {
		matched, err := matchesAny(name, globs)
		if err != nil {
			return nil, err
		}
		if matched {
			tasks = append(tasks, job.Tasks[name])
		}
	}
	return tasks, nil
}

// matchesAny checks a name against the glob patterns.
func matchesAny(name string, globs []string) (bool, error) {
	if len(globs) == 0 {
		return true, nil
	}
	for _, glob := range globs {
		matched, err := path.Match(glob, name)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
