package testutil

import (
	"time"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// SampleSnapshot returns a snapshot exercising every field and enum,
// ordered the way the store keeps it.
func SampleSnapshot() domain.Snapshot {
	base := time.Date(2026, 4, 1, 8, 30, 0, 0, time.UTC)
	at := func(minutes int) time.Time { return base.Add(time.Duration(minutes) * time.Minute) }

	return domain.Snapshot{
		Tasks: []domain.Task{
			{
				ID:          "task-2",
				Title:       `Review "Q2" plan`,
				Description: "Line one\nLine two",
				Priority:    domain.PriorityP1,
				Status:      domain.StatusCompleted,
				Progress:    60,
				Source:      domain.SourceTodoist,
				CreatedAt:   at(5),
				DueDate:     "2026-04-10",
			},
			{
				ID:        "task-1",
				Title:     "Build Mission Control",
				Priority:  domain.PriorityP4,
				Status:    domain.StatusInProgress,
				Progress:  10,
				Source:    domain.SourceInternal,
				CreatedAt: at(0),
			},
		},
		Activities: []domain.Activity{
			{ID: "act-3", Text: "Deliverable ready: deck.pdf", Type: domain.ActivityDeliverable, Timestamp: at(7)},
			{ID: "act-2", Text: "Inbox triaged", Type: domain.ActivityEmail, Timestamp: at(6)},
			{ID: "act-1", Text: "New task: Build Mission Control", Type: domain.ActivityTask, Timestamp: at(0)},
		},
		Deliverables: []domain.Deliverable{
			{ID: "del-2", Name: "deck.pdf", URL: "file:///tmp/deck.pdf", Type: domain.DeliverableFile, CreatedAt: at(7), TaskID: "task-2"},
			{ID: "del-1", Name: "mockup", URL: "https://example.com/m.png", Type: domain.DeliverableImage, CreatedAt: at(3)},
		},
		Messages: []domain.Message{
			{ID: "msg-1", Text: "status?", Sender: domain.SenderUser, Timestamp: at(1)},
			{ID: "msg-2", Text: "Acknowledged: status?", Sender: domain.SenderOpenClaw, Timestamp: at(2)},
			{ID: "msg-3", Text: "thanks", Sender: domain.SenderUser, Timestamp: at(8)},
		},
	}
}
