package gostruct

import "log/slog"

// Options control Go rendering.
//
// ImportPath – import path of the output package; see ImportPath
type Options struct {
	ImportPath string `json:"import_path,omitempty" yaml:"import_path,omitempty" toml:"import_path,omitempty" mapstructure:"import_path,omitempty"`

	Logger *slog.Logger `json:"-" yaml:"-" toml:"-" mapstructure:"-"`
}

type Option func(*Options)

func WithImportPath(p string) Option   { return func(o *Options) { o.ImportPath = p } }
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }
