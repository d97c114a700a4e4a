package textlog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	smerrors "github.com/Station-Manager/errors"
	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// OutputOption configures an Output at construction.
type OutputOption func(*outputBase)

// WithOutputFormatter makes the output render with f instead of the
// Logger's formatter.
func WithOutputFormatter(f Formatter) OutputOption {
	return func(o *outputBase) {
		o.formatter = f
	}
}

// outputBase holds the state every output variant shares.
type outputBase struct {
	mu        sync.RWMutex
	formatter Formatter
	enabled   atomic.Bool
}

func (o *outputBase) init(opts []OutputOption) {
	o.enabled.Store(true)
	for _, opt := range opts {
		opt(o)
	}
}

func (o *outputBase) Enable()         { o.enabled.Store(true) }
func (o *outputBase) Disable()        { o.enabled.Store(false) }
func (o *outputBase) IsEnabled() bool { return o.enabled.Load() }

func (o *outputBase) Formatter() Formatter {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.formatter
}

func (o *outputBase) SetFormatter(f Formatter) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.formatter = f
}

func (o *outputBase) RemoveFormatter() {
	o.SetFormatter(nil)
}

// StreamOutput writes to an existing io.Writer and flushes after every line.
// Write errors are not reported; a stream is assumed always writable.
type StreamOutput struct {
	outputBase
	wmu sync.Mutex
	w   io.Writer
}

// NewStreamOutput returns an output writing to w.
func NewStreamOutput(w io.Writer, opts ...OutputOption) *StreamOutput {
	o := &StreamOutput{w: w}
	o.init(opts)
	return o
}

// DefaultStreamOutput returns an output writing to standard error.
func DefaultStreamOutput(opts ...OutputOption) *StreamOutput {
	return NewStreamOutput(colorable.NewColorableStderr(), opts...)
}

// Writer returns the destination stream.
func (o *StreamOutput) Writer() io.Writer { return o.w }

func (o *StreamOutput) Send(text string) bool {
	o.wmu.Lock()
	defer o.wmu.Unlock()
	_, _ = io.WriteString(o.w, text)
	if f, ok := o.w.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
	return true
}

// Close does nothing; the stream belongs to whoever supplied it.
func (o *StreamOutput) Close() error { return nil }

func (o *StreamOutput) String() string {
	if o.w == os.Stderr {
		return "stream(stderr)"
	}
	if o.w == os.Stdout {
		return "stream(stdout)"
	}
	return fmt.Sprintf("stream(%T)", o.w)
}

// FileOutput appends to a file opened when the output is created.
type FileOutput struct {
	outputBase
	wmu  sync.Mutex
	path string
	file *os.File
	err  error
}

// NewFileOutput opens path for appending, creating it if needed.
func NewFileOutput(path string, opts ...OutputOption) (*FileOutput, error) {
	const op smerrors.Op = "textlog.NewFileOutput"
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, smerrors.New(op).Err(err).Msg(errMsgOpenFile)
	}
	o := &FileOutput{path: path, file: f}
	o.init(opts)
	return o, nil
}

// Path returns the path the output was opened with.
func (o *FileOutput) Path() string { return o.path }

// Err returns the error from the most recent failed Send, if any.
func (o *FileOutput) Err() error {
	o.wmu.Lock()
	defer o.wmu.Unlock()
	return o.err
}

// Send writes text to the file. Any write error is kept for Err and
// reported as false.
func (o *FileOutput) Send(text string) bool {
	o.wmu.Lock()
	defer o.wmu.Unlock()
	if _, err := o.file.WriteString(text); err != nil {
		o.err = err
		return false
	}
	return true
}

// Close closes the file. Sends after Close fail.
func (o *FileOutput) Close() error {
	o.wmu.Lock()
	defer o.wmu.Unlock()
	return o.file.Close()
}

func (o *FileOutput) String() string {
	return "file(" + o.path + ")"
}

// ZerologOutput forwards each rendered line, without its terminator, as the
// message of a zerolog event.
type ZerologOutput struct {
	outputBase
	logger zerolog.Logger
}

// NewZerologOutput returns an output logging through zl.
func NewZerologOutput(zl zerolog.Logger, opts ...OutputOption) *ZerologOutput {
	o := &ZerologOutput{logger: zl}
	o.init(opts)
	return o
}

func (o *ZerologOutput) Send(text string) bool {
	o.logger.Log().Msg(strings.TrimRight(text, "\r\n"))
	return true
}

func (o *ZerologOutput) Close() error { return nil }

func (o *ZerologOutput) String() string { return "zerolog" }
