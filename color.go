package textlog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const escape = "\x1b"

// Ansi is an ANSI SGR escape sequence such as "\x1b[31m".
type Ansi string

// Color returns the escape sequence selecting attrs, e.g.
// Color(color.FgRed, color.Bold).
func Color(attrs ...color.Attribute) Ansi {
	codes := make([]string, len(attrs))
	for i, a := range attrs {
		codes[i] = strconv.Itoa(int(a))
	}
	return Ansi(escape + "[" + strings.Join(codes, ";") + "m")
}

// RGB returns a 24-bit foreground colour. Components are clamped to 0..255.
func RGB(r, g, b int) Ansi {
	return Ansi(fmt.Sprintf("%s[38;2;%d;%d;%dm", escape, clampRGB(r), clampRGB(g), clampRGB(b)))
}

func clampRGB(v int) int {
	return min(max(v, 0), 255)
}

var resetCode = Color(color.Reset)

// colour slots, one per rank
var defaultColors = [...]Ansi{
	Color(color.FgGreen),
	Color(color.FgBlue),
	Color(color.FgYellow),
	Color(color.FgRed),
	Color(color.FgRed, color.Bold),
}

// ColorFormatter renders like TemplateFormatter and wraps the whole line in
// the colour of the record's level followed by a reset. Warning and Critical
// share the colour of Warn and Fatal.
type ColorFormatter struct {
	TemplateFormatter
	colors [len(defaultColors)]Ansi
}

// NewColorFormatter returns a ColorFormatter with the default colours.
func NewColorFormatter(opts ...FormatterOption) *ColorFormatter {
	f := &ColorFormatter{TemplateFormatter: *NewTemplateFormatter(opts...)}
	f.ResetColors()
	return f
}

// Format renders r and wraps it in the colour for its level.
// Records with an undeclared level return ErrUnknownLevel.
func (f *ColorFormatter) Format(r Record) (string, error) {
	code, err := f.ColorOf(r.Level())
	if err != nil {
		return emptyString, err
	}
	return f.render(string(code)+f.template+string(resetCode), r)
}

func slot(level Level) (int, error) {
	rank := level.Rank()
	if rank < 0 {
		return 0, fmt.Errorf("%w: %d", ErrUnknownLevel, uint8(level))
	}
	return rank, nil
}

// ColorOf returns the colour currently used for level.
func (f *ColorFormatter) ColorOf(level Level) (Ansi, error) {
	i, err := slot(level)
	if err != nil {
		return emptyString, err
	}
	return f.colors[i], nil
}

// SetColor changes the colour of level and of every alias sharing its rank.
func (f *ColorFormatter) SetColor(level Level, code Ansi) error {
	i, err := slot(level)
	if err != nil {
		return err
	}
	f.colors[i] = code
	return nil
}

// ResetColor restores the default colour of level.
func (f *ColorFormatter) ResetColor(level Level) error {
	i, err := slot(level)
	if err != nil {
		return err
	}
	f.colors[i] = defaultColors[i]
	return nil
}

// SetColors sets all five colours at once. An empty code leaves that
// colour unchanged.
func (f *ColorFormatter) SetColors(debug, info, warn, err, fatal Ansi) {
	for i, code := range [...]Ansi{debug, info, warn, err, fatal} {
		if code != emptyString {
			f.colors[i] = code
		}
	}
}

// ResetColors restores every default colour.
func (f *ColorFormatter) ResetColors() {
	f.colors = defaultColors
}
