package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to a writer.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Output receives log lines. Defaults to stderr.
	Output io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Output != nil {
		return h.Output
	}
	return os.Stderr
}

// HandleError logs a RefreshError.
func (h *LogHandler) HandleError(err *RefreshError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[pullrefresh error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
		return
	}
	fmt.Fprintf(w, "[pullrefresh error] %s: %v\n", err.Op, err.Err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[pullrefresh panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[pullrefresh panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
