package payload

import (
	"encoding/json"
	"time"
)

// Task is the subset of a gosynctasks task that the host sends to view plugins.
type Task struct {
	UID         string
	Summary     string
	Description string
	Status      string
	Priority    int
	Categories  []string
	DueDate     *time.Time
	StartDate   *time.Time
	Created     time.Time
	Modified    time.Time
	Completed   *time.Time
	ParentUID   string
}

// Encode serializes a task the way the host pipes it to a plugin.
// Dates are RFC 3339; unset dates are omitted.
func Encode(task Task, format string, width int, color bool) ([]byte, error) {
	data := map[string]interface{}{
		"uid":         task.UID,
		"summary":     task.Summary,
		"description": task.Description,
		"status":      task.Status,
		"priority":    task.Priority,
		"categories":  task.Categories,
		"format":      format,
		"width":       width,
		"color":       color,
	}

	if task.DueDate != nil && !task.DueDate.IsZero() {
		data["due_date"] = task.DueDate.Format(time.RFC3339)
	}
	if task.StartDate != nil && !task.StartDate.IsZero() {
		data["start_date"] = task.StartDate.Format(time.RFC3339)
	}
	if !task.Created.IsZero() {
		data["created"] = task.Created.Format(time.RFC3339)
	}
	if !task.Modified.IsZero() {
		data["modified"] = task.Modified.Format(time.RFC3339)
	}
	if task.Completed != nil && !task.Completed.IsZero() {
		data["completed"] = task.Completed.Format(time.RFC3339)
	}

	if task.ParentUID != "" {
		data["parent_uid"] = task.ParentUID
	}

	return json.Marshal(data)
}

// SampleTask returns a task with every date set, relative to now.
func SampleTask(now time.Time) Task {
	due := now.AddDate(0, 0, 3)
	start := now.AddDate(0, 0, -1)
	return Task{
		UID:        "sample-task-1",
		Summary:    "Write quarterly report",
		Status:     "NEEDS-ACTION",
		Priority:   5,
		Categories: []string{"work"},
		DueDate:    &due,
		StartDate:  &start,
		Created:    now.AddDate(0, 0, -7),
		Modified:   now,
	}
}
