package textlog

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	smerrors "github.com/Station-Manager/errors"
	"go.uber.org/atomic"
)

// Logger is a named logger with a base level, a default formatter and an
// ordered list of outputs. Loggers are independent of each other; there is
// no hierarchy and no registry.
//
// Outputs must be comparable (in practice, pointers). A Logger is safe for
// concurrent use.
type Logger struct {
	name    string
	level   atomic.Uint32
	enabled atomic.Bool

	mu        sync.RWMutex
	formatter Formatter
	outputs   []Output
	// outputs created by the Logger itself; closed when they leave it
	owned map[Output]struct{}
}

// New returns an enabled Logger at DefaultLevel with a copy of the default
// formatter and no outputs. Call SetUp or Configure before logging, or use
// Basic.
func New(name string) *Logger {
	l := &Logger{
		name:      name,
		formatter: DefaultFormatter(),
		owned:     make(map[Output]struct{}),
	}
	l.level.Store(uint32(DefaultLevel))
	l.enabled.Store(true)
	return l
}

// Basic returns a Logger that writes to standard error.
func Basic(name string) *Logger {
	l := New(name)
	l.SetUp()
	return l
}

// SetUp makes sure the Logger has at least one output.
func (l *Logger) SetUp() {
	_ = l.Configure()
}

// ConfigOption changes one piece of Logger state in Configure.
type ConfigOption func(*configuration)

type configuration struct {
	level          *Level
	formatter      Formatter
	outputs        []Output
	replaceOutputs bool
	enabled        *bool
	files          []string
}

// WithLevel sets the base level.
func WithLevel(level Level) ConfigOption {
	return func(c *configuration) {
		c.level = &level
	}
}

// WithFormatter sets the Logger's formatter.
func WithFormatter(f Formatter) ConfigOption {
	return func(c *configuration) {
		c.formatter = f
	}
}

// WithOutputs replaces every output of the Logger with outputs.
func WithOutputs(outputs ...Output) ConfigOption {
	return func(c *configuration) {
		c.outputs = outputs
		c.replaceOutputs = true
	}
}

// WithEnabled enables or disables the Logger.
func WithEnabled(enabled bool) ConfigOption {
	return func(c *configuration) {
		c.enabled = &enabled
	}
}

// WithFile appends a FileOutput for path. It is added after WithOutputs has
// been applied, so it is never replaced by it.
func WithFile(path string) ConfigOption {
	return func(c *configuration) {
		c.files = append(c.files, path)
	}
}

// Configure applies opts; anything not mentioned stays as it is. Afterwards
// the Logger always has at least one output: if none remain, a stream
// output on standard error is installed.
//
// An undeclared level or a nil output is rejected before anything changes.
// Files named with WithFile are opened next. If one cannot be opened,
// Configure returns the error and changes nothing.
func (l *Logger) Configure(opts ...ConfigOption) error {
	const op smerrors.Op = "textlog.Logger.Configure"

	var c configuration
	for _, opt := range opts {
		opt(&c)
	}
	if c.level != nil && !c.level.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownLevel, uint8(*c.level))
	}
	if slices.ContainsFunc(c.outputs, isNilOutput) {
		return ErrNilOutput
	}

	opened := make([]Output, 0, len(c.files))
	for _, path := range c.files {
		fo, err := NewFileOutput(path)
		if err != nil {
			for _, o := range opened {
				_ = o.Close()
			}
			return smerrors.New(op).Err(err).Msg(errMsgOpenFile)
		}
		opened = append(opened, fo)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if c.level != nil {
		l.level.Store(uint32(*c.level))
	}
	if c.formatter != nil {
		l.formatter = c.formatter
	}
	if c.replaceOutputs {
		for _, o := range l.outputs {
			if !slices.Contains(c.outputs, o) {
				l.release(o)
			}
		}
		l.outputs = slices.Clone(c.outputs)
	}
	for _, o := range opened {
		l.outputs = append(l.outputs, o)
		l.owned[o] = struct{}{}
	}
	if c.enabled != nil {
		l.enabled.Store(*c.enabled)
	}
	if len(l.outputs) == 0 {
		o := DefaultStreamOutput()
		l.outputs = append(l.outputs, o)
		l.owned[o] = struct{}{}
	}
	return nil
}

// ResetConfig restores the default level and formatter, enables the Logger
// and removes every output. Unlike Configure it does not install a default
// output, so the Logger stays silent until it is configured again.
func (l *Logger) ResetConfig() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level.Store(uint32(DefaultLevel))
	l.formatter = DefaultFormatter()
	for _, o := range l.outputs {
		l.release(o)
	}
	l.outputs = nil
	l.enabled.Store(true)
}

// Close closes and removes every output the Logger created itself.
// Outputs added by the caller are left alone.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	var errs []error
	kept := l.outputs[:0]
	for _, o := range l.outputs {
		if _, ok := l.owned[o]; !ok {
			kept = append(kept, o)
			continue
		}
		delete(l.owned, o)
		if err := o.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	clear(l.outputs[len(kept):])
	l.outputs = kept
	return errors.Join(errs...)
}

// release closes o if the Logger owns it. The caller holds l.mu.
func (l *Logger) release(o Output) {
	if _, ok := l.owned[o]; !ok {
		return
	}
	delete(l.owned, o)
	_ = o.Close()
}

// Log logs message at level.
func (l *Logger) Log(level Level, message any) error {
	return l.logInner(callerDepth, message, level)
}

// Print logs message at the Logger's base level.
func (l *Logger) Print(message any) error {
	return l.logInner(callerDepth, message, l.Level())
}

func (l *Logger) Debug(message any) error {
	return l.logInner(callerDepth, message, Debug)
}

func (l *Logger) Info(message any) error {
	return l.logInner(callerDepth, message, Info)
}

func (l *Logger) Warn(message any) error {
	return l.logInner(callerDepth, message, Warn)
}

func (l *Logger) Warning(message any) error {
	return l.logInner(callerDepth, message, Warning)
}

func (l *Logger) Error(message any) error {
	return l.logInner(callerDepth, message, Error)
}

// Fatal logs at Fatal. It does not exit.
func (l *Logger) Fatal(message any) error {
	return l.logInner(callerDepth, message, Fatal)
}

// Critical logs at Critical. It does not exit.
func (l *Logger) Critical(message any) error {
	return l.logInner(callerDepth, message, Critical)
}

// logInner filters, builds the record and hands it to every enabled output
// in order. depth is the number of frames between logInner and the user's
// call site.
//
// An output whose formatter or Send fails is disabled and the failure is
// logged at Error through the same path, one frame deeper, so the self-log
// reports the same call site. Only ErrInvalidMessage reaches the caller.
func (l *Logger) logInner(depth int, message any, level Level) error {
	text, err := messageText(message)
	if err != nil {
		return err
	}
	if !l.enabled.Load() || level.Rank() < l.Level().Rank() {
		return nil
	}

	rec := newRecord(text, level, l.name, depth)

	l.mu.RLock()
	outputs := slices.Clone(l.outputs)
	lf := l.formatter
	l.mu.RUnlock()

	for _, out := range outputs {
		if !out.IsEnabled() {
			continue
		}
		f := out.Formatter()
		if f == nil {
			f = lf
		}
		line, ferr := f.Format(rec)
		if ferr == nil && out.Send(line) {
			continue
		}
		out.Disable()
		_ = l.logInner(depth+1, failureMessage(out, ferr), Error)
	}
	return nil
}

// AddOutput appends o to the Logger's outputs.
func (l *Logger) AddOutput(o Output) error {
	if isNilOutput(o) {
		return ErrNilOutput
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.outputs = append(l.outputs, o)
	return nil
}

// RemoveOutput removes the first output equal to o and reports whether one
// was found.
func (l *Logger) RemoveOutput(o Output) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := slices.Index(l.outputs, o)
	if i < 0 {
		return false
	}
	l.outputs = slices.Delete(l.outputs, i, i+1)
	if !slices.Contains(l.outputs, o) {
		l.release(o)
	}
	return true
}

// RemoveAllOutputs removes every output. No default output is installed.
func (l *Logger) RemoveAllOutputs() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, o := range l.outputs {
		l.release(o)
	}
	l.outputs = nil
}

// Outputs returns a copy of the Logger's outputs in registration order.
func (l *Logger) Outputs() []Output {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.outputs)
}

func (l *Logger) Name() string { return l.name }

func (l *Logger) Level() Level { return Level(l.level.Load()) }

// SetLevel sets the base level. An undeclared level is rejected with
// ErrUnknownLevel and the base level is left unchanged.
func (l *Logger) SetLevel(level Level) error {
	if !level.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownLevel, uint8(level))
	}
	l.level.Store(uint32(level))
	return nil
}

func (l *Logger) Formatter() Formatter {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.formatter
}

// SetFormatter sets the Logger's formatter. A nil f restores a copy of the
// default formatter.
func (l *Logger) SetFormatter(f Formatter) {
	if f == nil {
		f = DefaultFormatter()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.formatter = f
}

func (l *Logger) IsEnabled() bool { return l.enabled.Load() }
func (l *Logger) Enable()         { l.enabled.Store(true) }
func (l *Logger) Disable()        { l.enabled.Store(false) }
