package preview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Its-donkey/sweet-treats/internal/ui/dom"
)

// deferredMsg delivers a scheduled callback back into Update so that every
// document mutation happens on the program's update loop.
type deferredMsg struct {
	task *teaTask
}

type teaTask struct {
	fn   func()
	done bool
}

func (t *teaTask) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	return true
}

// teaScheduler turns AfterFunc calls into tea.Tick commands. Commands are
// queued while a key is handled and returned from Update afterwards.
type teaScheduler struct {
	queued []tea.Cmd
	tasks  []*teaTask
}

var _ dom.Scheduler = (*teaScheduler)(nil)

func (s *teaScheduler) AfterFunc(d time.Duration, fn func()) dom.Task {
	task := &teaTask{fn: fn}
	s.tasks = append(s.tasks, task)
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return deferredMsg{task: task}
	}))
	return task
}

func (s *teaScheduler) drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// run executes a due task unless it was stopped first.
func (s *teaScheduler) run(task *teaTask) {
	s.forget(task)
	if task.done {
		return
	}
	task.done = true
	task.fn()
}

func (s *teaScheduler) forget(task *teaTask) {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t != task && !t.done {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
}

// outstanding returns tasks that have neither run nor been stopped.
func (s *teaScheduler) outstanding() []*teaTask {
	var out []*teaTask
	for _, t := range s.tasks {
		if !t.done {
			out = append(out, t)
		}
	}
	return out
}
