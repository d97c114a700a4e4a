package textlog

import (
	"fmt"
	"io"
)

// LevelLogger is the logging surface of *Logger. Code that only writes log
// messages should depend on this rather than on *Logger.
type LevelLogger interface {
	Log(level Level, message any) error
	Print(message any) error
	Debug(message any) error
	Info(message any) error
	Warn(message any) error
	Warning(message any) error
	Error(message any) error
	Fatal(message any) error
	Critical(message any) error
}

// Formatter renders a Record into the text handed to an Output.
type Formatter interface {
	Format(r Record) (string, error)
}

// Colorizer is implemented by formatters whose per-level colours can be
// changed. Aliases share the colour of the level they alias.
type Colorizer interface {
	SetColor(level Level, code Ansi) error
	ResetColor(level Level) error
	ColorOf(level Level) (Ansi, error)
}

// Output is a destination for rendered log lines.
//
// Send reports whether the text was delivered. A nil Formatter means the
// owning Logger's formatter is used. Close releases whatever the output
// holds; outputs that own nothing return nil.
type Output interface {
	Send(text string) bool
	Enable()
	Disable()
	IsEnabled() bool
	Formatter() Formatter
	SetFormatter(f Formatter)
	RemoveFormatter()
	io.Closer
	fmt.Stringer
}

var (
	_ LevelLogger = (*Logger)(nil)
	_ Formatter   = (*TemplateFormatter)(nil)
	_ Formatter   = (*ColorFormatter)(nil)
	_ Colorizer   = (*ColorFormatter)(nil)
	_ Output      = (*StreamOutput)(nil)
	_ Output      = (*FileOutput)(nil)
	_ Output      = (*ZerologOutput)(nil)
)
