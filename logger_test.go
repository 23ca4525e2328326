package echonet_test

import (
	"errors"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
)

type loggedError struct {
	msg    string
	err    error
	fields watermill.LogFields
}

// recordingLogger keeps every error and info entry, including those of loggers derived with With.
type recordingLogger struct {
	fields watermill.LogFields
	sink   *errorSink
}

type errorSink struct {
	mu     sync.Mutex
	errors []loggedError
	infos  []string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{sink: &errorSink{}}
}

func (rl *recordingLogger) Error(msg string, err error, fields watermill.LogFields) {
	rl.sink.mu.Lock()
	defer rl.sink.mu.Unlock()

	rl.sink.errors = append(rl.sink.errors, loggedError{msg: msg, err: err, fields: rl.fields.Add(fields)})
}

func (rl *recordingLogger) Info(msg string, fields watermill.LogFields) {
	rl.sink.mu.Lock()
	defer rl.sink.mu.Unlock()

	rl.sink.infos = append(rl.sink.infos, msg)
}

func (rl *recordingLogger) Debug(msg string, fields watermill.LogFields) {}
func (rl *recordingLogger) Trace(msg string, fields watermill.LogFields) {}

func (rl *recordingLogger) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &recordingLogger{fields: rl.fields.Add(fields), sink: rl.sink}
}

func (rl *recordingLogger) Errors() []loggedError {
	rl.sink.mu.Lock()
	defer rl.sink.mu.Unlock()

	return append([]loggedError(nil), rl.sink.errors...)
}

func (rl *recordingLogger) Infos() []string {
	rl.sink.mu.Lock()
	defer rl.sink.mu.Unlock()

	return append([]string(nil), rl.sink.infos...)
}

func (rl *recordingLogger) HasError(target error) bool {
	for _, e := range rl.Errors() {
		if errors.Is(e.err, target) {
			return true
		}
	}

	return false
}
