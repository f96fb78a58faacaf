package config

const (
	// DefaultFormat is used when an environment declares no "format".
	DefaultFormat = "{timestamp} - {logger_name} - {level_name} - {message}"
	// DefaultDateFormat is used when an environment declares no "datefmt".
	// The layout uses strftime directives: YYYY-MM-DD HH:MM:SS.
	DefaultDateFormat = "%Y-%m-%d %H:%M:%S"
)

// Format describes how one environment renders its log lines.
type Format struct {
	// Format is the line template. Supported placeholders:
	//   {timestamp}, {logger_name}, {level_name}, {level_no}, {message}
	Format string `yaml:"format" json:"format"`

	// DateFormat is the strftime layout of {timestamp}.
	DateFormat string `yaml:"datefmt" json:"datefmt"`
}

// WithDefaults returns a copy of f with empty fields set to their defaults.
func (f Format) WithDefaults() Format {
	if f.Format == "" {
		f.Format = DefaultFormat
	}
	if f.DateFormat == "" {
		f.DateFormat = DefaultDateFormat
	}
	return f
}

// Formats maps an environment name to its Format.
type Formats map[string]Format

// Lookup returns the format of env with defaults applied.
// ok is false when env is absent.
func (f Formats) Lookup(env string) (format Format, ok bool) {
	format, ok = f[env]
	if !ok {
		return Format{}, false
	}
	return format.WithDefaults(), true
}

// LoadFormats reads the formats configuration. The file is re-read on every call.
func LoadFormats(path string) (Formats, error) {
	var formats Formats
	if err := load(path, &formats); err != nil {
		return nil, err
	}
	return formats, nil
}
