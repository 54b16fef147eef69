package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSend(t *testing.T) {
	rec := &Recorder{}
	Send(rec, "Linked", "/tmp/wl/report.pdf")

	assert.Equal(t, []Message{{Title: "Linked", Body: "/tmp/wl/report.pdf"}}, rec.Messages)
}

func TestSend_IgnoresFailures(t *testing.T) {
	rec := &Recorder{Err: errors.New("no notification daemon")}
	assert.NotPanics(t, func() { Send(rec, "Linked", "x") })
	assert.Len(t, rec.Messages, 1)
}

func TestSend_NilNotifier(t *testing.T) {
	assert.NotPanics(t, func() { Send(nil, "Linked", "x") })
}
