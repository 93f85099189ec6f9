package domain

import "slices"

// Snapshot is the complete set of collections at one instant.
// Tasks, Activities and Deliverables are newest-first; Messages are oldest-first.
type Snapshot struct {
	Tasks        []Task        `json:"tasks" yaml:"tasks"`
	Activities   []Activity    `json:"activities" yaml:"activities"`
	Deliverables []Deliverable `json:"deliverables" yaml:"deliverables"`
	Messages     []Message     `json:"messages" yaml:"messages"`
}

// NewSnapshot returns a snapshot with four empty collections.
func NewSnapshot() Snapshot {
	return Snapshot{
		Tasks:        []Task{},
		Activities:   []Activity{},
		Deliverables: []Deliverable{},
		Messages:     []Message{},
	}
}

// Clone returns a copy that shares no backing arrays with s.
// Nil collections become empty ones.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Tasks:        cloneSlice(s.Tasks),
		Activities:   cloneSlice(s.Activities),
		Deliverables: cloneSlice(s.Deliverables),
		Messages:     cloneSlice(s.Messages),
	}
}

// FindTask returns the index of the task with the given id, or -1.
func (s Snapshot) FindTask(id string) int {
	return slices.IndexFunc(s.Tasks, func(t Task) bool { return t.ID == id })
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// PersistedRecord is the serialized form of a snapshot under the storage key.
type PersistedRecord struct {
	State   Snapshot `json:"state" yaml:"state"`
	Version int      `json:"version" yaml:"version"`
}

// SnapshotVersion is written into every persisted record. It is never checked on load.
const SnapshotVersion = 0
