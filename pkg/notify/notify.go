// Package notify shows desktop notifications.
package notify

import (
	"github.com/arthur-debert/inputbox/pkg/logging"
	"github.com/gen2brain/beeep"
)

// AppName is shown as the notification source
const AppName = "inputbox"

// Notifier delivers a short message to the user
type Notifier interface {
	Notify(title, body string) error
}

type desktop struct{}

// NewDesktop returns a Notifier backed by the platform notification service
func NewDesktop() Notifier {
	beeep.AppName = AppName
	return desktop{}
}

func (desktop) Notify(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Send delivers a notification and only logs a failure. A missing
// notification daemon never fails the operation that triggered it.
func Send(n Notifier, title, body string) {
	if n == nil {
		return
	}
	if err := n.Notify(title, body); err != nil {
		logger := logging.GetLogger("notify")
		logger.Warn().Err(err).Str("title", title).Msg("Failed to show notification")
	}
}

// Recorder keeps notifications in memory
type Recorder struct {
	Messages []Message
	Err      error
}

// Message is one recorded notification
type Message struct {
	Title string
	Body  string
}

func (r *Recorder) Notify(title, body string) error {
	r.Messages = append(r.Messages, Message{Title: title, Body: body})
	return r.Err
}
