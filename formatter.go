package textlog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"
)

const (
	tagStart = "{"
	tagEnd   = "}"
)

// FormatterOption configures a TemplateFormatter at construction.
type FormatterOption func(*TemplateFormatter)

// WithTemplate sets the message template.
func WithTemplate(template string) FormatterOption {
	return func(f *TemplateFormatter) {
		f.template = template
	}
}

// WithTimeLayout sets the Go reference layout used for {time}.
func WithTimeLayout(layout string) FormatterOption {
	return func(f *TemplateFormatter) {
		f.timeLayout = layout
	}
}

// WithTerminator sets the character appended after every rendered line.
func WithTerminator(r rune) FormatterOption {
	return func(f *TemplateFormatter) {
		f.terminator = r
	}
}

// TemplateFormatter substitutes placeholders in a message template.
//
// Recognised placeholders are {message}, {level}, {levelNumber}, {name},
// {filepath}, {filename}, {line} and {time}. Anything else is copied
// literally. The template is scanned once from left to right, so text that a
// placeholder expands to is never expanded again.
type TemplateFormatter struct {
	template   string
	timeLayout string
	terminator rune
}

var defaultFormatter = TemplateFormatter{
	template:   DefaultTemplate,
	timeLayout: DefaultTimeLayout,
	terminator: DefaultTerminator,
}

// DefaultFormatter returns a new copy of the library default formatter.
// Changing the copy does not affect any other Logger.
func DefaultFormatter() *TemplateFormatter {
	f := defaultFormatter
	return &f
}

// NewTemplateFormatter returns a formatter starting from the library defaults.
func NewTemplateFormatter(opts ...FormatterOption) *TemplateFormatter {
	f := DefaultFormatter()
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *TemplateFormatter) Template() string   { return f.template }
func (f *TemplateFormatter) TimeLayout() string { return f.timeLayout }
func (f *TemplateFormatter) Terminator() rune   { return f.terminator }

func (f *TemplateFormatter) SetTemplate(template string) { f.template = template }
func (f *TemplateFormatter) SetTimeLayout(layout string) { f.timeLayout = layout }
func (f *TemplateFormatter) SetTerminator(r rune)        { f.terminator = r }

// Format renders r through the formatter's template.
func (f *TemplateFormatter) Format(r Record) (string, error) {
	return f.render(f.template, r)
}

func (f *TemplateFormatter) render(template string, r Record) (string, error) {
	level, ok := r.Level().Name()
	if !ok {
		return emptyString, fmt.Errorf("%w: %d", ErrUnknownLevel, uint8(r.Level()))
	}

	var b strings.Builder
	b.Grow(len(template) + len(r.Message()) + 32)

	tag := func(w io.Writer, tag string) (int, error) {
		// "{{level}" keeps the stray brace and still substitutes the token
		prefix := emptyString
		if i := strings.LastIndex(tag, tagStart); i >= 0 {
			prefix = tagStart + tag[:i]
			tag = tag[i+1:]
		}
		return io.WriteString(w, prefix+f.substitute(tag, level, r))
	}
	if _, err := fasttemplate.ExecuteFunc(template, tagStart, tagEnd, &b, tag); err != nil {
		return emptyString, err
	}
	b.WriteRune(f.terminator)
	return b.String(), nil
}

func (f *TemplateFormatter) substitute(tag, level string, r Record) string {
	switch tag {
	case "message":
		return r.Message()
	case "level":
		return level
	case "levelNumber":
		return strconv.Itoa(r.Level().Rank())
	case "name":
		return r.LoggerName()
	case "filepath":
		return r.Filepath()
	case "filename":
		return r.Filename()
	case "line":
		return strconv.Itoa(r.Line())
	case "time":
		return r.Time().Format(f.timeLayout)
	default:
		return tagStart + tag + tagEnd
	}
}
