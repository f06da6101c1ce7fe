package converter

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/cmmoran/kotlinmodelgen/internal/kotlinpoet"
)

// Options control conversion and output.
//
// InFile        – package descriptor to convert (yaml or json)
// OutDir        – output root; kotlin files land under their package path
// OutFile       – output file name, defaults to <Class>.<ext>
// Target        – kotlin or go
// KnownTypes    – map well-known java types to their kotlin equivalents (default true);
// when false every type name is used as-is
// TypeMappings  – extra java → kotlin fully qualified name mappings, layered over KnownTypes;
// configuration files carry them as a list of from=to entries (see ParseTypeMappings)
// UseSiteTarget – use-site target put on every property annotation (default field)
type Options struct {
	InFile        string            `json:"in_file,omitempty" yaml:"in_file,omitempty" toml:"in_file,omitempty" mapstructure:"in_file,omitempty"`
	OutDir        string            `json:"out_dir,omitempty" yaml:"out_dir,omitempty" toml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	OutFile       string            `json:"out_file,omitempty" yaml:"out_file,omitempty" toml:"out_file,omitempty" mapstructure:"out_file,omitempty"`
	Target        string            `json:"target,omitempty" yaml:"target,omitempty" toml:"target,omitempty" mapstructure:"target,omitempty"`
	KnownTypes    bool              `json:"known_types,omitempty" yaml:"known_types,omitempty" toml:"known_types,omitempty" mapstructure:"known_types,omitempty"`
	TypeMappings  map[string]string `json:"type_mappings,omitempty" yaml:"type_mappings,omitempty" toml:"type_mappings,omitempty" mapstructure:"-"`
	UseSiteTarget string            `json:"use_site_target,omitempty" yaml:"use_site_target,omitempty" toml:"use_site_target,omitempty" mapstructure:"use_site_target,omitempty"`

	Logger *slog.Logger `json:"-" yaml:"-" toml:"-" mapstructure:"-"`
}

func NewOptions() *Options {
	return &Options{
		OutDir:        ".",
		Target:        "kotlin",
		KnownTypes:    true,
		UseSiteTarget: string(kotlinpoet.UseSiteField),
	}
}

// Normalize fills defaults and validates. It is safe to call more than once.
func (o *Options) Normalize() error {
	if len(o.OutDir) == 0 {
		o.OutDir = "."
	}
	if strings.Contains(o.OutDir, ".") {
		o.OutDir, _ = filepath.Abs(o.OutDir)
	}
	if len(o.Target) == 0 {
		o.Target = "kotlin"
	}
	o.Target = strings.ToLower(o.Target)
	if _, err := kotlinpoet.ParseUseSiteTarget(o.UseSiteTarget); err != nil {
		return fmt.Errorf("options: %w", err)
	}
	for from, to := range o.TypeMappings {
		if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
			return fmt.Errorf("options: empty type mapping %q=%q", from, to)
		}
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return nil
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithInFile(f string) Option       { return func(o *Options) { o.InFile = f } }
func WithOutDir(d string) Option       { return func(o *Options) { o.OutDir = d } }
func WithOutFile(f string) Option      { return func(o *Options) { o.OutFile = f } }
func WithTarget(t string) Option       { return func(o *Options) { o.Target = t } }
func WithoutKnownTypes() Option        { return func(o *Options) { o.KnownTypes = false } }
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }
func WithUseSiteTarget(t kotlinpoet.UseSiteTarget) Option {
	return func(o *Options) { o.UseSiteTarget = string(t) }
}
func WithTypeMapping(from, to string) Option {
	return func(o *Options) {
		if o.TypeMappings == nil {
			o.TypeMappings = make(map[string]string)
		}
		o.TypeMappings[from] = to
	}
}

// ParseTypeMappings reads from=to entries. Keys are kept verbatim: dotted
// java names cannot be map keys in viper, which splits and lowercases them.
func ParseTypeMappings(entries []string) (map[string]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(entries))
	for _, entry := range entries {
		from, to, ok := strings.Cut(entry, "=")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("invalid type mapping %q, want from=to", entry)
		}
		out[from] = to
	}
	return out, nil
}
