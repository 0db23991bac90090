package server

import (
	"fmt"
	"time"

	"github.com/seridescent/raytracing/pkg/core"
)

// ConsoleMessage carries a render progress line to the client
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// webLogger implements core.Logger by sending progress lines to a
// channel drained by the websocket writer
type webLogger struct {
	consoleChan chan<- ConsoleMessage
}

func newWebLogger(consoleChan chan<- ConsoleMessage) core.Logger {
	return &webLogger{consoleChan: consoleChan}
}

// Printf forwards a progress line to the client without blocking the
// render; lines are dropped when the client cannot keep up
func (wl *webLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	logger.Info(message)

	select {
	case wl.consoleChan <- ConsoleMessage{Message: message, Timestamp: time.Now()}:
	default:
	}
}
