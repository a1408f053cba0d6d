package domain

import "time"

// EventKind identifies what changed the index file
type EventKind string

const (
	EventRebuild  EventKind = "rebuild"
	EventDescribe EventKind = "describe"
)

// JournalEvent records one write of an index file
type JournalEvent struct {
	ID        int64
	Kind      EventKind
	Root      string
	IndexPath string
	Key       string // describe only
	Entries   int
	Added     int
	Removed   int
	Changed   int
	At        time.Time
}
