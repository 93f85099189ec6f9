// Package store holds the single authoritative mission control state.
//
// Every command runs under one mutex: the primary mutation, its derived
// activity entry, the write-through to the repository and the subscriber
// notification all happen inside a single transition, so no reader ever
// observes a half-applied command.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// Store owns the four collections and exposes the command surface.
// Fields are ordered to minimize memory padding.
type Store struct {
	repo   domain.SnapshotRepository
	ids    domain.IDGenerator
	clock  domain.Clock
	logger domain.Logger
	subs   map[int]chan domain.Snapshot
	state  domain.Snapshot
	nextID int
	mu     sync.Mutex
}

// New creates a Store and restores the last persisted snapshot from repo.
// A nil repo keeps state in memory only. Load failures are logged and the
// store starts with empty collections.
func New(repo domain.SnapshotRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *Store {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	if clock == nil {
		clock = domain.RealClock{}
	}
	s := &Store{
		repo:   repo,
		ids:    ids,
		clock:  clock,
		logger: logger,
		subs:   make(map[int]chan domain.Snapshot),
		state:  domain.NewSnapshot(),
	}
	s.restore()
	return s
}

func (s *Store) restore() {
	if s.repo == nil {
		return
	}
	snap, err := s.repo.Load()
	if err != nil {
		s.logger.Warn("store", fmt.Sprintf("load snapshot failed, starting empty: %v", err))
		return
	}
	if snap == nil {
		s.logger.Debug("store", "no snapshot found, starting empty")
		return
	}
	s.state = snap.Clone()
	s.logger.Info("store", fmt.Sprintf("restored %d tasks, %d activities, %d deliverables, %d messages",
		len(s.state.Tasks), len(s.state.Activities), len(s.state.Deliverables), len(s.state.Messages)))
}

// AddTask creates a task at the head of the task list and logs it in the activity feed.
// It returns the new task's identifier.
func (s *Store) AddTask(in domain.TaskInput) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	task := in.NewTask(s.ids.NewID(), now)
	s.state.Tasks = prepend(s.state.Tasks, task)
	s.derive(domain.ActivityTask, domain.TaskCreatedText(task.Title), now)

	s.commit("add task")
	return task.ID
}

// UpdateTask merges upd into the task with the given id.
// An unknown id is silently ignored: nothing changes, nothing is saved and
// subscribers are not notified. A change of status derives one activity
// entry that names the task by its title before the merge.
func (s *Store) UpdateTask(id string, upd domain.TaskUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.state.FindTask(id)
	if idx < 0 {
		s.logger.Debug("store", fmt.Sprintf("update ignored, unknown task %q", id))
		return
	}

	prior := s.state.Tasks[idx]
	next := prior
	upd.Apply(&next)

	// Copy so snapshots handed out earlier never see the change.
	tasks := make([]domain.Task, len(s.state.Tasks))
	copy(tasks, s.state.Tasks)
	tasks[idx] = next
	s.state.Tasks = tasks

	if domain.StatusChanged(prior, upd) {
		s.derive(domain.ActivityTask, domain.TaskMovedText(prior.Title, next.Status), s.clock.Now())
	}

	s.commit("update task")
}

// AddActivity prepends an activity entry.
func (s *Store) AddActivity(text string, typ domain.ActivityType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.derive(typ, text, s.clock.Now())
	s.commit("add activity")
}

// AddDeliverable prepends a deliverable and logs it in the activity feed.
// It returns the new deliverable's identifier.
func (s *Store) AddDeliverable(in domain.DeliverableInput) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	d := in.NewDeliverable(s.ids.NewID(), now)
	s.state.Deliverables = prepend(s.state.Deliverables, d)
	s.derive(domain.ActivityDeliverable, domain.DeliverableReadyText(d.Name), now)

	s.commit("add deliverable")
	return d.ID
}

// AddMessage appends a chat message. Messages stay in chronological order.
func (s *Store) AddMessage(text string, sender domain.Sender) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := domain.Message{
		ID:        s.ids.NewID(),
		Text:      text,
		Sender:    sender,
		Timestamp: s.clock.Now(),
	}
	s.state.Messages = append(s.state.Messages[:len(s.state.Messages):len(s.state.Messages)], msg)

	s.commit("add message")
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Task returns the task with the given id.
func (s *Store) Task(id string) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.state.FindTask(id)
	if idx < 0 {
		return domain.Task{}, false
	}
	return s.state.Tasks[idx], true
}

// Subscribe returns a channel that receives the post-command snapshot after
// every committed command. Only the latest snapshot is kept if the reader
// falls behind. The returned function unsubscribes and closes the channel.
func (s *Store) Subscribe() (<-chan domain.Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan domain.Snapshot, 1)
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// derive prepends an activity entry. Callers hold s.mu.
func (s *Store) derive(typ domain.ActivityType, text string, now time.Time) {
	s.state.Activities = prepend(s.state.Activities, domain.Activity{
		ID:        s.ids.NewID(),
		Text:      text,
		Type:      typ,
		Timestamp: now,
	})
}

// commit mirrors the new state to the repository and notifies subscribers.
// Callers hold s.mu. Save errors are logged, never returned.
func (s *Store) commit(op string) {
	if s.repo != nil {
		if err := s.repo.Save(s.state.Clone()); err != nil {
			s.logger.Error("store", fmt.Sprintf("%s: save snapshot: %v", op, err))
		}
	}
	for _, ch := range s.subs {
		publish(ch, s.state.Clone())
	}
	s.logger.Debug("store", op)
}

// publish replaces any unread snapshot in ch with snap.
func publish(ch chan domain.Snapshot, snap domain.Snapshot) {
	select {
	case <-ch:
	default:
	}
	ch <- snap
}

func prepend[T any](list []T, item T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, item)
	return append(out, list...)
}
