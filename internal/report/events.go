// Package report writes a JSONL audit trail of every step tidysic takes, in
// an append-only event-logger style: one append-only file, one JSON object
// per line, each carrying a level and an event kind.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType is the kind of step an Event records.
type EventType string

const (
	EventScan      EventType = "scan"
	EventStructure EventType = "structure"
	EventPlan      EventType = "plan"
	EventCollision EventType = "collision"
	EventCopy      EventType = "copy"
	EventMove      EventType = "move"
	EventCleanup   EventType = "cleanup"
	EventError     EventType = "error"
)

// EventLevel is the severity of an Event.
type EventLevel string

const (
	LevelDebug   EventLevel = "debug"
	LevelInfo    EventLevel = "info"
	LevelWarning EventLevel = "warning"
	LevelError   EventLevel = "error"
)

var levelPriority = map[EventLevel]int{
	LevelDebug:   0,
	LevelInfo:    1,
	LevelWarning: 2,
	LevelError:   3,
}

// Event is a single line of the JSONL audit trail.
type Event struct {
	Timestamp time.Time  `json:"ts"`
	RunID     string     `json:"run_id"`
	Level     EventLevel `json:"level"`
	Event     EventType  `json:"event"`
	SrcPath   string     `json:"src_path,omitempty"`
	DestPath  string     `json:"dest_path,omitempty"`
	Action    string     `json:"action,omitempty"`
	Reason    string     `json:"reason,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// EventLogger writes Events to a JSONL file, one run per file.
type EventLogger struct {
	file     *os.File
	encoder  *json.Encoder
	mu       sync.Mutex
	path     string
	runID    string
	minLevel EventLevel
}

// NewEventLogger creates the run's event log under outputDir, named with a
// timestamp and a fresh run ID so concurrent runs never collide.
func NewEventLogger(outputDir string, minLevel EventLevel) (*EventLogger, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating event log directory: %w", err)
	}

	runID := uuid.NewString()
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("tidysic-%s-%s.jsonl", timestamp, runID[:8])
	path := filepath.Join(outputDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating event log: %w", err)
	}

	return &EventLogger{
		file:     file,
		encoder:  json.NewEncoder(file),
		path:     path,
		runID:    runID,
		minLevel: minLevel,
	}, nil
}

// Log writes an event, filtering by the logger's minimum level. Nil
// receivers and nil files are no-ops so a logger is always safe to call
// even when event logging wasn't requested.
func (l *EventLogger) Log(event *Event) error {
	if l == nil || l.file == nil {
		return nil
	}
	if levelPriority[event.Level] < levelPriority[l.minLevel] {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	event.RunID = l.runID
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	return l.encoder.Encode(event)
}

// LogScan records that a file was classified (audio or clutter) during the
// scan phase.
func (l *EventLogger) LogScan(srcPath, kind string) error {
	return l.Log(&Event{Level: LevelDebug, Event: EventScan, SrcPath: srcPath, Action: kind})
}

// LogStructure records the structure path it is given (empty when no
// explicit path was set) and, when err is non-nil, the failure to read or
// parse the structure.
func (l *EventLogger) LogStructure(path string, err error) error {
	level := LevelInfo
	errMsg := ""
	if err != nil {
		level = LevelError
		errMsg = err.Error()
	}
	return l.Log(&Event{Level: level, Event: EventStructure, SrcPath: path, Error: errMsg})
}

// LogCollision records a fatal destination collision before any operation
// has run.
func (l *EventLogger) LogCollision(target string, sources []string) error {
	return l.Log(&Event{
		Level:    LevelError,
		Event:    EventCollision,
		DestPath: target,
		Reason:   fmt.Sprintf("%d sources collide", len(sources)),
	})
}

// LogOperation records one planned copy/move as it is carried out (or
// would be, in dry-run mode).
func (l *EventLogger) LogOperation(src, dest, action string, err error) error {
	eventType := EventCopy
	if action == "move" || action == "would-move" {
		eventType = EventMove
	}
	level := LevelInfo
	errMsg := ""
	if err != nil {
		level = LevelError
		errMsg = err.Error()
	}
	return l.Log(&Event{
		Level:    level,
		Event:    eventType,
		SrcPath:  src,
		DestPath: dest,
		Action:   action,
		Error:    errMsg,
	})
}

// LogCleanup records removal of a now-empty source directory after a move.
func (l *EventLogger) LogCleanup(path string, err error) error {
	level := LevelInfo
	errMsg := ""
	if err != nil {
		level = LevelWarning
		errMsg = err.Error()
	}
	return l.Log(&Event{Level: level, Event: EventCleanup, SrcPath: path, Error: errMsg})
}

// Close closes the underlying file. Safe to call on a nil logger.
func (l *EventLogger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// Path returns the event log's file path, or "" for a nil logger.
func (l *EventLogger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// NullLogger returns a logger that discards every event.
func NullLogger() *EventLogger {
	return nil
}
</content>
