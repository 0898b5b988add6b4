package server

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// Console message levels
const (
	LevelInfo  = "info"
	LevelError = "error"
)

// ConsoleMessage is one render log line shown in the web console
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
}

// WebLogger forwards render logs to the console channel, tagged with the
// render they came from. A full or nil channel drops messages.
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

var _ core.Logger = (*WebLogger)(nil)

func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) *WebLogger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

// Printf logs an info message
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	wl.send(LevelInfo, fmt.Sprintf(format, args...))
}

// Errorf logs a failed render
func (wl *WebLogger) Errorf(format string, args ...interface{}) {
	wl.send(LevelError, fmt.Sprintf(format, args...))
}

func (wl *WebLogger) send(level, message string) {
	log.Printf("[%s] %s: %s", wl.renderID, level, strings.TrimRight(message, "\n"))

	if wl.consoleChan == nil {
		return
	}
	select {
	case wl.consoleChan <- ConsoleMessage{
		RenderID:  wl.renderID,
		Message:   message,
		Timestamp: time.Now(),
		Level:     level,
	}:
	default:
	}
}
