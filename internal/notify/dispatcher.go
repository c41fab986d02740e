// Package notify renders appointment emails and sends them asynchronously.
package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"easymed-booking/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

var ErrDispatcherClosed = errors.New("notification dispatcher is closed")

const failureMessage = "Failed to send notification"

// Result is the outcome of one notification send.
type Result struct {
	Success bool
	Message string
	Err     error
}

// Task is a handle on an in-flight send. Callers may Wait on it or drop it.
type Task struct {
	done   chan struct{}
	result Result
}

func newTask() *Task {
	return &Task{done: make(chan struct{})}
}

func completedTask(result Result) *Task {
	t := newTask()
	t.finish(result)
	return t
}

func (t *Task) finish(result Result) {
	t.result = result
	close(t.done)
}

// Done is closed once the send has finished.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the send finishes or ctx ends. Ending ctx does not stop the send.
func (t *Task) Wait(ctx context.Context) Result {
	select {
	case <-t.done:
		return t.result
	case <-ctx.Done():
		return Result{Success: false, Message: failureMessage, Err: ctx.Err()}
	}
}

// Recorder observes notification outcomes.
type Recorder interface {
	ObserveNotification(kind string, success bool)
}

type noopRecorder struct{}

func (noopRecorder) ObserveNotification(string, bool) {}

// Dispatcher renders notifications and hands them to an EmailSender on a goroutine.
type Dispatcher struct {
	sender   EmailSender
	log      *logrus.Logger
	recorder Recorder

	mu     sync.Mutex
	wg     sync.WaitGroup
	closed bool
}

func NewDispatcher(sender EmailSender, log *logrus.Logger, recorder Recorder) *Dispatcher {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Dispatcher{
		sender:   sender,
		log:      log,
		recorder: recorder,
	}
}

// Dispatch starts sending n and returns immediately. The send outlives ctx cancellation.
func (d *Dispatcher) Dispatch(ctx context.Context, n entity.Notification) *Task {
	content, err := Render(n.Type, n.Appointment)
	if err != nil {
		d.log.Warnf("Failed to render %s notification: %+v", n.Type, err)
		d.recorder.ObserveNotification(string(n.Type), false)
		return completedTask(Result{Message: failureMessage, Err: err})
	}

	msg := EmailMessage{
		To:      n.Recipient.Email,
		ToName:  n.Recipient.Name,
		Subject: content.Subject,
		Body:    content.Text,
		HTML:    content.HTML,
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return completedTask(Result{Message: failureMessage, Err: ErrDispatcherClosed})
	}
	d.wg.Add(1)
	d.mu.Unlock()

	task := newTask()
	sendCtx := context.WithoutCancel(ctx)
	go func() {
		defer d.wg.Done()
		task.finish(d.send(sendCtx, n.Type, msg))
	}()

	return task
}

func (d *Dispatcher) send(ctx context.Context, kind entity.NotificationType, msg EmailMessage) Result {
	if err := d.sender.Send(ctx, msg); err != nil {
		d.log.Warnf("Failed to send %s notification to %s: %+v", kind, msg.To, err)
		d.recorder.ObserveNotification(string(kind), false)
		return Result{Message: failureMessage, Err: err}
	}

	d.recorder.ObserveNotification(string(kind), true)
	return Result{Success: true, Message: fmt.Sprintf("%s notification sent successfully", kind)}
}

// Close rejects new sends and waits for in-flight ones.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	d.wg.Wait()
	d.log.Info("Notification dispatcher stopped")
}
