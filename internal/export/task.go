package export

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Raymagdonal/kpi-ctb/internal/platform/metrics"
)

type State string

const (
	StateIdle      State = "idle"
	StateExporting State = "exporting"
	StateDone      State = "done"
	StateFailed    State = "failed"
)

var ErrExportInProgress = errors.New("export: another export is in progress")

// Renderer writes a snapshot to the given path.
type Renderer interface {
	Render(snap Snapshot, path string) error
	Ext() string
}

type Status struct {
	State    State  `json:"state"`
	TaskID   string `json:"taskId,omitempty"`
	File     string `json:"file,omitempty"`
	Fallback bool   `json:"fallback,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Task serializes export requests: one render at a time, observable
// through Status. When the primary renderer fails and a fallback is
// configured, the task degrades to the fallback instead of failing.
type Task struct {
	mu       sync.Mutex
	log      *zap.Logger
	metrics  *metrics.Collector
	dir      string
	fallback Renderer

	state    State
	taskID   string
	file     string
	usedFall bool
	lastErr  string
}

func NewTask(dir string, fallback Renderer, log *zap.Logger, collector *metrics.Collector) *Task {
	if log == nil {
		log = zap.NewNop()
	}
	return &Task{
		log:      log,
		metrics:  collector,
		dir:      dir,
		fallback: fallback,
		state:    StateIdle,
	}
}

// Start launches an asynchronous render. A second request while one is
// running is refused with ErrExportInProgress.
func (t *Task) Start(r Renderer, snap Snapshot) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateExporting {
		return "", ErrExportInProgress
	}

	id := uuid.NewString()
	t.state = StateExporting
	t.taskID = id
	t.file = ""
	t.usedFall = false
	t.lastErr = ""

	go t.run(id, r, snap)
	return id, nil
}

func (t *Task) run(id string, r Renderer, snap Snapshot) {
	path := filepath.Join(t.dir, Filename(snap.Employee, r.Ext()))
	err := r.Render(snap, path)
	fallback := false

	if err != nil && t.fallback != nil {
		t.log.Warn("primary renderer failed, falling back",
			zap.String("taskId", id), zap.Error(err))
		path = filepath.Join(t.dir, Filename(snap.Employee, t.fallback.Ext()))
		err = t.fallback.Render(snap, path)
		fallback = err == nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.taskID != id {
		return
	}
	if err != nil {
		t.state = StateFailed
		t.lastErr = err.Error()
		t.log.Error("export failed", zap.String("taskId", id), zap.Error(err))
	} else {
		t.state = StateDone
		t.file = path
		t.usedFall = fallback
		t.log.Info("export finished",
			zap.String("taskId", id),
			zap.String("file", path),
			zap.Bool("fallback", fallback))
	}
	if t.metrics != nil {
		t.metrics.RecordExport(err != nil)
	}
}

func (t *Task) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Status{
		State:    t.state,
		TaskID:   t.taskID,
		File:     t.file,
		Fallback: t.usedFall,
		Error:    t.lastErr,
	}
}
