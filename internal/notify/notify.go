// Package notify sends desktop notifications summarising finished batches.
package notify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/themeshot/internal/logging"
	"github.com/example/themeshot/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventRender fires when a render batch completes.
	EventRender Event = "render"
	// EventCompare fires when a baseline comparison completes.
	EventCompare Event = "compare"
	// EventCopy fires when a contact sheet is copied to the clipboard.
	EventCopy Event = "copy"
)

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from configuration.
type Preferences struct {
	Title  string
	Events map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "ThemeShot",
		Events: map[Event]EventPreference{
			EventRender:  {Template: "Rendered %s"},
			EventCompare: {Template: "Compared %s"},
			EventCopy:    {Template: "Copied %s to clipboard"},
		},
	}
}

// LoadPreferences reads overrides from environment variables.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("THEMESHOT_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	apply := func(key string, event Event) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			eventPrefs := prefs.Events[event]
			eventPrefs.Template = v
			prefs.Events[event] = eventPrefs
		}
	}
	apply("THEMESHOT_NOTIFY_RENDER_TEXT", EventRender)
	apply("THEMESHOT_NOTIFY_COMPARE_TEXT", EventCompare)
	apply("THEMESHOT_NOTIFY_COPY_TEXT", EventCopy)
	return prefs
}

// Sender delivers one notification. platform.Notify is the default.
type Sender func(title, body string, opts platform.Options) error

// Notifier sends OS-level notifications based on the configured preferences.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    Sender
	log     *logging.Logger
}

// New creates a new Notifier using the provided preferences.
func New(prefs Preferences, log *logging.Logger) *Notifier {
	cloned := Preferences{Title: prefs.Title, Events: make(map[Event]EventPreference, len(prefs.Events))}
	for k, v := range prefs.Events {
		cloned.Events[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool), send: platform.Notify, log: log}
}

// WithSender replaces the delivery function.
func (n *Notifier) WithSender(s Sender) *Notifier {
	if n != nil && s != nil {
		n.send = s
	}
	return n
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Rendered reports a finished render batch. previewPath, usually the
// contact sheet, is shown as the notification icon when it exists.
func (n *Notifier) Rendered(total, failed int, previewPath string) {
	if !n.enabledFor(EventRender) {
		return
	}
	detail := fmt.Sprintf("%d theme(s)", total)
	if failed > 0 {
		detail += fmt.Sprintf(", %d failed", failed)
	}
	opts := platform.Options{Critical: failed > 0}
	if abs, err := filepath.Abs(previewPath); err == nil && previewPath != "" {
		if _, statErr := os.Stat(abs); statErr == nil {
			opts.IconPath = abs
		}
	}
	n.dispatch(EventRender, detail, opts)
}

// Compared reports a finished comparison.
func (n *Notifier) Compared(compared, failures int) {
	if !n.enabledFor(EventCompare) {
		return
	}
	detail := fmt.Sprintf("%d theme(s), %d with visual differences", compared, failures)
	n.dispatch(EventCompare, detail, platform.Options{Critical: failures > 0})
}

// Copied reports a clipboard export.
func (n *Notifier) Copied(detail string) {
	if !n.enabledFor(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "image"
	}
	n.dispatch(EventCopy, detail, platform.Options{})
}

func (n *Notifier) enabledFor(event Event) bool {
	if n == nil {
		return false
	}
	if n.enabled == nil {
		return false
	}
	return n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	template := strings.TrimSpace(n.template(event))
	if template == "" {
		return
	}
	body := expand(template, strings.TrimSpace(detail))
	if body == "" {
		return
	}
	opts.AppName = n.prefs.Title
	if err := n.send(n.prefs.Title, body, opts); err != nil {
		n.log.With("event", string(event)).Error(err, "notification failed")
	}
}

func (n *Notifier) template(event Event) string {
	if pref, ok := n.prefs.Events[event]; ok {
		return pref.Template
	}
	return ""
}

// expand substitutes detail for the first %s of a user-supplied template.
// Templates without one get the detail appended.
func expand(template, detail string) string {
	if strings.Contains(template, "%s") {
		return strings.TrimSpace(strings.Replace(template, "%s", detail, 1))
	}
	if detail == "" {
		return template
	}
	return template + ": " + detail
}
