package textlog

import (
	"bytes"
	"os"

	smerrors "github.com/Station-Manager/errors"
	"github.com/pelletier/go-toml/v2"
)

// Config describes a Logger in a TOML file:
//
//	name = "api"
//	level = "warning"
//	template = "{time} {level} {message}"
//	time_layout = "15:04:05"
//	color = true
//	stderr = true
//	files = ["/var/log/api.log"]
type Config struct {
	Name       string   `toml:"name" validate:"required"`
	Level      string   `toml:"level" validate:"omitempty,loglevel"`
	Enabled    *bool    `toml:"enabled"`
	Template   string   `toml:"template"`
	TimeLayout string   `toml:"time_layout"`
	Terminator string   `toml:"terminator" validate:"omitempty,len=1"`
	Color      bool     `toml:"color"`
	Stderr     bool     `toml:"stderr"`
	Files      []string `toml:"files" validate:"dive,required"`
}

// LoadConfig reads and validates a TOML configuration file.
func LoadConfig(path string) (*Config, error) {
	const op smerrors.Op = "textlog.LoadConfig"
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, smerrors.New(op).Err(err).Msg(errMsgConfigRead)
	}
	return ParseConfig(data)
}

// ParseConfig decodes and validates TOML configuration. Unknown keys are
// rejected.
func ParseConfig(data []byte) (*Config, error) {
	const op smerrors.Op = "textlog.ParseConfig"
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, smerrors.New(op).Err(err).Msg(errMsgConfigDecode)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewFromConfig validates cfg and builds a configured Logger. File outputs
// it opens belong to the Logger and are closed by Logger.Close.
func NewFromConfig(cfg *Config) (*Logger, error) {
	const op smerrors.Op = "textlog.NewFromConfig"
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	opts := []ConfigOption{WithFormatter(newConfigFormatter(cfg))}
	if cfg.Level != emptyString {
		level, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, smerrors.New(op).Err(err).Msg(errMsgConfigInvalid)
		}
		opts = append(opts, WithLevel(level))
	}
	if cfg.Enabled != nil {
		opts = append(opts, WithEnabled(*cfg.Enabled))
	}
	opts = append(opts, initializeOutputs(cfg)...)

	l := New(cfg.Name)
	if err := l.Configure(opts...); err != nil {
		return nil, err
	}
	return l, nil
}

func newConfigFormatter(cfg *Config) Formatter {
	var opts []FormatterOption
	if cfg.Template != emptyString {
		opts = append(opts, WithTemplate(cfg.Template))
	}
	if cfg.TimeLayout != emptyString {
		opts = append(opts, WithTimeLayout(cfg.TimeLayout))
	}
	if cfg.Terminator != emptyString {
		opts = append(opts, WithTerminator([]rune(cfg.Terminator)[0]))
	}
	if cfg.Color {
		return NewColorFormatter(opts...)
	}
	return NewTemplateFormatter(opts...)
}
