package kanban

import (
	"sync"

	"github.com/freelancetrack/models"
)

// Board is an in-memory cache of one project's tasks that distinguishes
// confirmed state (what the store last returned) from pending optimistic
// moves (applied locally while the backing write is in flight). Pending moves
// are promoted on Confirm and discarded on Revert, so a failed write never
// leaves the board silently diverged from the store.
//
// Board is safe for concurrent use.
type Board struct {
	mu        sync.Mutex
	confirmed []models.Task
	pending   map[string]models.TaskStatus // taskID -> optimistic status
	subs      []chan struct{}
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{
		pending: make(map[string]models.TaskStatus),
	}
}

// Refresh replaces the confirmed task set with the result of a full refetch.
// Pending moves are dropped: the refetched state is authoritative (last write
// wins).
func (b *Board) Refresh(tasks []models.Task) {
	b.mu.Lock()
	b.confirmed = make([]models.Task, len(tasks))
	copy(b.confirmed, tasks)
	b.pending = make(map[string]models.TaskStatus)
	b.mu.Unlock()

	b.notify()
}

// ApplyMove records an optimistic status change for a task. The move stays
// pending until Confirm or Revert.
func (b *Board) ApplyMove(taskID string, status models.TaskStatus) {
	b.mu.Lock()
	b.pending[taskID] = status
	b.mu.Unlock()

	b.notify()
}

// Confirm promotes a pending move into confirmed state after the backing
// write succeeded.
func (b *Board) Confirm(taskID string) {
	b.mu.Lock()
	status, ok := b.pending[taskID]
	if ok {
		delete(b.pending, taskID)
		for i := range b.confirmed {
			if b.confirmed[i].ID == taskID {
				b.confirmed[i].SetStatus(status)
				break
			}
		}
	}
	b.mu.Unlock()

	if ok {
		b.notify()
	}
}

// Revert discards a pending move after the backing write failed, restoring
// the confirmed status.
func (b *Board) Revert(taskID string) {
	b.mu.Lock()
	_, ok := b.pending[taskID]
	delete(b.pending, taskID)
	b.mu.Unlock()

	if ok {
		b.notify()
	}
}

// Tasks returns the merged view of the board: confirmed tasks with pending
// moves applied on top. The returned slice is a copy.
func (b *Board) Tasks() []models.Task {
	b.mu.Lock()
	defer b.mu.Unlock()

	tasks := make([]models.Task, len(b.confirmed))
	copy(tasks, b.confirmed)
	for i := range tasks {
		if status, ok := b.pending[tasks[i].ID]; ok {
			tasks[i].SetStatus(status)
		}
	}
	return tasks
}

// Subscribe returns a channel that receives a signal after every board
// change. The send is non-blocking: a subscriber that is not ready misses the
// intermediate signal, not the state, since it reads Tasks() afterwards.
func (b *Board) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()
	return ch
}

func (b *Board) notify() {
	b.mu.Lock()
	subs := make([]chan struct{}, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
