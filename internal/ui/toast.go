package ui

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ToastKind selects a toast's colour and title.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
)

const (
	// ToastContainerID is the id of the shared container toasts are appended to.
	ToastContainerID = "toastContainer"
	// DefaultToastDelay is how long a toast stays before it hides itself.
	DefaultToastDelay = 3 * time.Second

	toastContainerClass = "toast-container position-fixed top-0 end-0 p-3"
)

type toastStyle struct {
	bg    string
	title string
}

var toastStyles = map[ToastKind]toastStyle{
	ToastSuccess: {"bg-success", "Thành công"},
	ToastError:   {"bg-danger", "Lỗi"},
	ToastInfo:    {"bg-info", "Thông báo"},
}

func styleFor(kind ToastKind) toastStyle {
	if s, ok := toastStyles[kind]; ok {
		return s
	}
	return toastStyles[ToastSuccess]
}

var toastTmpl = template.Must(template.New("toast").Parse(
	`<div class="toast-header {{.Bg}} text-white"><strong class="me-auto">{{.Title}}</strong>` +
		`<button type="button" class="btn-close btn-close-white" data-bs-dismiss="toast" aria-label="Close"></button></div>` +
		`<div class="toast-body">{{.Message}}</div>`))

// Timer is the part of *time.Timer the Notifier uses.
type Timer interface {
	Stop() bool
}

// Options configures a Notifier.
type Options struct {
	// Delay before a toast hides itself. Zero means DefaultToastDelay.
	Delay time.Duration
	// AfterFunc schedules the hide. Defaults to time.AfterFunc.
	AfterFunc func(d time.Duration, f func()) Timer
	Now       func() time.Time
	Logger    *zap.SugaredLogger
}

type toast struct {
	timer Timer
}

// Notifier shows auto-hiding toasts in a Document. The shared container is created on the
// first Show and never again; each toast is removed from the document exactly once.
type Notifier struct {
	doc   *Document
	delay time.Duration
	after func(time.Duration, func()) Timer
	now   func() time.Time
	log   *zap.SugaredLogger

	once    sync.Once
	initErr error

	mu     sync.Mutex
	active map[string]*toast
}

// NewNotifier returns a Notifier writing into doc.
func NewNotifier(doc *Document, opts Options) *Notifier {
	n := &Notifier{
		doc:    doc,
		delay:  opts.Delay,
		after:  opts.AfterFunc,
		now:    opts.Now,
		log:    opts.Logger,
		active: make(map[string]*toast),
	}
	if n.delay <= 0 {
		n.delay = DefaultToastDelay
	}
	if n.after == nil {
		n.after = func(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
	}
	if n.now == nil {
		n.now = time.Now
	}
	if n.log == nil {
		n.log = zap.NewNop().Sugar()
	}
	return n
}

func (n *Notifier) container() error {
	n.once.Do(func() {
		if n.doc.Has(ToastContainerID) {
			return
		}
		n.initErr = n.doc.Append("", Node{Tag: "div", ID: ToastContainerID, Class: toastContainerClass})
	})
	return n.initErr
}

// Show appends a toast and schedules its hide. It returns the toast's element id.
func (n *Notifier) Show(kind ToastKind, message string) (string, error) {
	if n.doc == nil {
		return "", errors.New("ui: notifier has no document")
	}
	if err := n.container(); err != nil {
		return "", fmt.Errorf("ui: create toast container: %w", err)
	}

	style := styleFor(kind)
	var inner strings.Builder
	err := toastTmpl.Execute(&inner, struct{ Bg, Title, Message string }{style.bg, style.title, message})
	if err != nil {
		return "", err
	}

	id := fmt.Sprintf("toast-%d-%s", n.now().UnixMilli(), uuid.NewString()[:8])
	err = n.doc.Append(ToastContainerID, Node{
		Tag:   "div",
		ID:    id,
		Class: "toast show " + style.bg + " text-white",
		Attrs: map[string]string{"role": "alert", "aria-live": "assertive", "aria-atomic": "true"},
		Inner: inner.String(),
	})
	if err != nil {
		return "", err
	}

	t := &toast{}
	n.mu.Lock()
	n.active[id] = t
	n.mu.Unlock()

	timer := n.after(n.delay, func() { n.hidden(id) })
	n.mu.Lock()
	if _, ok := n.active[id]; ok {
		t.timer = timer
	}
	n.mu.Unlock()

	n.log.Debugw("toast shown", "id", id, "kind", kind)
	return id, nil
}

// hidden is the hide event: it removes the toast unless that already happened.
func (n *Notifier) hidden(id string) bool {
	n.mu.Lock()
	t, ok := n.active[id]
	var timer Timer
	if ok {
		delete(n.active, id)
		timer = t.timer
	}
	n.mu.Unlock()
	if !ok {
		return false
	}
	if timer != nil {
		timer.Stop()
	}
	n.doc.Remove(id)
	n.log.Debugw("toast removed", "id", id)
	return true
}

// Hide dismisses a toast before its delay elapses. It reports whether the toast was still
// showing.
func (n *Notifier) Hide(id string) bool { return n.hidden(id) }

// Pending returns how many toasts have not been hidden yet.
func (n *Notifier) Pending() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.active)
}

// Close stops every pending hide timer. Toasts still showing stay in the document.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for id, t := range n.active {
		if t.timer != nil {
			t.timer.Stop()
		}
		delete(n.active, id)
	}
}
