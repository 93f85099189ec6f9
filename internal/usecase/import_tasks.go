package usecase

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// ImportTasksInput contains the parameters for importing tasks.
type ImportTasksInput struct {
	Content string // YAML document: a list of tasks, or {tasks: [...]}
	DryRun  bool   // If true, parse and validate without adding tasks
}

// ImportedTask is one task read from the import file.
type ImportedTask struct {
	Task domain.TaskInput
	ID   string // Assigned ID ("" in dry-run mode)
}

// ImportTasksOutput contains the tasks that were (or would be) added, in file order.
type ImportTasksOutput struct {
	Tasks []ImportedTask
}

// importEntry is the YAML shape of one task.
type importEntry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Priority    string `yaml:"priority"`
	Status      string `yaml:"status"`
	Source      string `yaml:"source"`
	DueDate     string `yaml:"dueDate"`
	Progress    int    `yaml:"progress"`
}

// ImportTasks adds every task from a YAML file, one AddTask per entry.
// Entries are added in file order, so the last entry ends up newest.
type ImportTasks struct {
	store  domain.StateStore
	logger domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(store domain.StateStore, logger domain.Logger) *ImportTasks {
	return &ImportTasks{
		store:  store,
		logger: logger,
	}
}

// Execute validates every entry first, then adds them.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	entries, err := parseImport(in.Content)
	if err != nil {
		return nil, err
	}

	out := &ImportTasksOutput{Tasks: make([]ImportedTask, 0, len(entries))}
	for i, e := range entries {
		taskIn, err := AddTaskInput(e).toTaskInput()
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		out.Tasks = append(out.Tasks, ImportedTask{Task: taskIn})
	}

	if in.DryRun {
		return out, nil
	}

	for i := range out.Tasks {
		out.Tasks[i].ID = uc.store.AddTask(out.Tasks[i].Task)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("imported %d tasks", len(out.Tasks)))
	}

	return out, nil
}

func parseImport(content string) ([]importEntry, error) {
	var list []importEntry
	if err := yaml.Unmarshal([]byte(content), &list); err == nil {
		return list, nil
	}

	var doc struct {
		Tasks []importEntry `yaml:"tasks"`
	}
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}
	return doc.Tasks, nil
}
