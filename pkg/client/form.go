package client

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Severity classifies a notification shown after a submit.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// defaultNotificationDuration is how long a notification stays visible
// before it dismisses itself.
const defaultNotificationDuration = 6 * time.Second

// Notification is the transient toast shown after a submit attempt.
type Notification struct {
	Message  string
	Severity Severity
	Visible  bool
}

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission is still outstanding.
var ErrSubmitInFlight = errors.New("a submission is already in flight")

// Form holds the editable contact form state: the three text fields, an
// in-flight flag and a dismissible notification. At most one submission is
// outstanding at a time; the relay itself offers no such guarantee.
type Form struct {
	api          *Client
	dismissAfter time.Duration

	mu           sync.Mutex
	name         string
	email        string
	message      string
	inFlight     bool
	notification Notification
	dismissTimer *time.Timer
}

// FormOption customises form instantiation.
type FormOption func(*Form)

// WithDismissAfter overrides how long a notification stays visible.
func WithDismissAfter(d time.Duration) FormOption {
	return func(f *Form) {
		if d > 0 {
			f.dismissAfter = d
		}
	}
}

// NewForm creates an empty form submitting through the given client.
func NewForm(api *Client, opts ...FormOption) *Form {
	f := &Form{api: api, dismissAfter: defaultNotificationDuration}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetField updates one of the three fields. Unknown field names are
// ignored, mirroring a form with a fixed set of inputs.
func (f *Form) SetField(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch name {
	case "name":
		f.name = value
	case "email":
		f.email = value
	case "message":
		f.message = value
	}
}

// Fields returns the current field values as name, email, message.
func (f *Form) Fields() (string, string, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.name, f.email, f.message
}

// InFlight reports whether a submission is outstanding.
func (f *Form) InFlight() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inFlight
}

// Notification returns the current notification state.
func (f *Form) Notification() Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notification
}

// Dismiss hides the notification immediately.
func (f *Form) Dismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hideNotificationLocked()
}

// Submit posts the current field values as one contact submission.
//
// On a 2xx response the fields are cleared and a success notification is
// shown. On any failure (validation rejection, server error, network
// error) the fields keep their values and a generic error notification is
// shown; the caller is not told which failure class occurred. The
// in-flight flag is cleared on every path.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	f.inFlight = true
	req := ContactRequest{Name: f.name, Email: f.email, Message: f.message}
	f.mu.Unlock()

	err := f.api.SubmitContact(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	defer func() { f.inFlight = false }()

	if err != nil {
		f.showNotificationLocked("Failed to send message. Please try again.", SeverityError)
		return err
	}

	f.name, f.email, f.message = "", "", ""
	f.showNotificationLocked("Message sent successfully!", SeveritySuccess)
	return nil
}

// showNotificationLocked replaces the notification and arms the
// auto-dismiss timer. Caller must hold f.mu.
func (f *Form) showNotificationLocked(message string, severity Severity) {
	if f.dismissTimer != nil {
		f.dismissTimer.Stop()
	}
	f.notification = Notification{Message: message, Severity: severity, Visible: true}
	f.dismissTimer = time.AfterFunc(f.dismissAfter, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.hideNotificationLocked()
	})
}

// hideNotificationLocked resets the notification. Caller must hold f.mu.
func (f *Form) hideNotificationLocked() {
	if f.dismissTimer != nil {
		f.dismissTimer.Stop()
		f.dismissTimer = nil
	}
	f.notification.Visible = false
}
