package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives every reported error. It starts as a quiet
	// LogHandler writing to stderr.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler installs h as the global handler and returns the one it
// replaced. A nil h installs a fresh LogHandler, which tests use to restore
// the default after swapping in a recorder.
func SetHandler(h ErrorHandler) (prev ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	prev, DefaultHandler = DefaultHandler, h
	handlerMu.Unlock()
	return prev
}

func handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report stamps err if needed and hands it to the global handler.
func Report(err *RefreshError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := handler(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic hands a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if h := handler(); h != nil {
		h.HandlePanic(err)
	}
}

// Recover must be deferred directly. It swallows a panic in progress and
// reports it under op, so the deferring function returns its zero values:
//
//	defer errors.Recover("refresh.content.ScrollBy")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// CaptureStack formats the stack of its caller's caller, one
// "function\n\tfile:line" entry per frame, leaving out runtime internals.
func CaptureStack() string {
	pcs := make([]uintptr, 32)
	pcs = pcs[:runtime.Callers(3, pcs)]
	if len(pcs) == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs)
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			return sb.String()
		}
	}
}
