package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/oascan/pkg/errors"
	"github.com/arthur-debert/oascan/pkg/logging"
	"github.com/arthur-debert/oascan/pkg/pattern"
)

// LoadOptions controls which sources Load reads
type LoadOptions struct {
	// ProjectDir is searched for project files and property sources. Defaults to ".".
	ProjectDir string
	// UserConfigFile replaces the XDG user file lookup when set
	UserConfigFile string
	SkipUserConfig bool
	SkipEnv        bool
	// Properties are host supplied property keys, applied above every file
	Properties map[string]string
	// Engine is used to validate regex mode scan values. Defaults to RE2.
	Engine pattern.Engine
}

func (o LoadOptions) projectDir() string {
	if o.ProjectDir == "" {
		return "."
	}
	return o.ProjectDir
}

// Load merges every source for opts into an immutable Config. Sources are
// applied lowest precedence first: embedded defaults, the user file, the
// project file, property files, pom.xml properties, host properties and
// finally environment variables.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	done := logging.LogOperationStart(logger, "load configuration")
	defer done()

	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	sources := DiscoverSources(opts)
	for _, src := range sources {
		if err := loadSource(k, src); err != nil {
			return nil, err
		}
		logger.Debug().Str("kind", string(src.Kind)).Str("path", src.Path).Msg("loaded configuration source")
	}

	if len(opts.Properties) > 0 {
		if err := loadProperties(k, opts.Properties, "host properties"); err != nil {
			return nil, err
		}
	}

	if !opts.SkipEnv {
		if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envToKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
		}
	}

	values, err := decode(k)
	if err != nil {
		return nil, err
	}

	cfg := &Config{values: values, sources: sources}
	if err := cfg.validatePatterns(opts.Engine); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadSource(k *koanf.Koanf, src Source) error {
	switch src.Kind {
	case SourceUser, SourceProject:
		parser, err := parserFor(src.Path)
		if err != nil {
			return err
		}
		if err := k.Load(file.Provider(src.Path), parser); err != nil {
			return errors.Wrapf(err, errors.ErrConfigParse, "failed to load %s", src.Path).
				WithDetail("path", src.Path)
		}
		return nil
	default:
		props, err := readPropertySource(src)
		if err != nil {
			return err
		}
		return loadProperties(k, props, src.Path)
	}
}

func loadProperties(k *koanf.Koanf, props map[string]string, origin string) error {
	translated, unknown := TranslateProperties(props)
	warnUnknown(origin, unknown)
	// no delimiter: map entry names such as paths may contain dots
	if err := k.Load(confmap.Provider(translated, ""), nil); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to load properties from %s", origin)
	}
	return nil
}

func warnUnknown(origin string, unknown []UnknownProperty) {
	logger := logging.GetLogger("config")
	for _, u := range unknown {
		ev := logger.Warn().Str("source", origin).Str("property", u.Property)
		if u.Suggestion != "" {
			ev = ev.Str("suggestion", u.Suggestion)
		}
		ev.Msg("unknown property")
	}
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported configuration file format: %s", path).
			WithDetail("path", path)
	}
}

var envKeys = func() map[string]string {
	m := make(map[string]string, len(optionTable))
	for _, o := range optionTable {
		if name := o.EnvVar(); name != "" {
			m[name] = o.Key
		}
	}
	return m
}()

func envToKey(name, value string) (string, interface{}) {
	key, ok := envKeys[name]
	if !ok || value == "" {
		return "", nil
	}
	return key, value
}

func decode(k *koanf.Koanf) (Values, error) {
	var values Values
	var md mapstructure.Metadata
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &values,
			Metadata:         &md,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				enumHookFunc(),
				csvToSliceHookFunc(),
				sliceToCSVHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &values, unmarshalConf); err != nil {
		return Values{}, errors.Wrap(err, errors.ErrConfigValid, "invalid configuration value")
	}

	if len(md.Unused) > 0 {
		logger := logging.GetLogger("config")
		for _, key := range md.Unused {
			logger.Warn().Str("key", key).Msg("unknown configuration key")
		}
	}
	return values, nil
}

func (c *Config) validatePatterns(engine pattern.Engine) error {
	opts := []pattern.Option{pattern.WithEngine(engine)}
	if engine == "" {
		opts = nil
	}
	checks := []struct {
		property string
		compile  func(...pattern.Option) (*pattern.Pattern, error)
	}{
		{PropertyPrefix + "scan.packages", c.ScanPackagesPattern},
		{PropertyPrefix + "scan.classes", c.ScanClassesPattern},
		{PropertyPrefix + "scan.exclude.packages", c.ScanExcludePackagesPattern},
		{PropertyPrefix + "scan.exclude.classes", c.ScanExcludeClassesPattern},
	}
	for _, check := range checks {
		if _, err := check.compile(opts...); err != nil {
			if oe, ok := err.(*errors.OascanError); ok {
				return oe.WithDetail("property", check.property)
			}
			return err
		}
	}
	return nil
}

var (
	strategyType  = reflect.TypeOf(OperationIDStrategy(""))
	behaviorType  = reflect.TypeOf(DuplicateOperationIDBehavior(""))
	stringSliceTy = reflect.TypeOf([]string(nil))
)

// enumHookFunc parses enum names case-insensitively and rejects unknown ones
func enumHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		switch t {
		case strategyType:
			return ParseOperationIDStrategy(s)
		case behaviorType:
			return ParseDuplicateOperationIDBehavior(s)
		}
		return data, nil
	}
}

// csvToSliceHookFunc lets list options be written as a single CSV string
func csvToSliceHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		s, ok := data.(string)
		if !ok || t != stringSliceTy {
			return data, nil
		}
		return pattern.CSVToList(s), nil
	}
}

// sliceToCSVHookFunc lets set options, which keep their raw string, be
// written as a native array
func sliceToCSVHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.Slice || t.Kind() != reflect.String {
			return data, nil
		}
		items, ok := data.([]interface{})
		if !ok {
			return data, nil
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return data, nil
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), nil
	}
}
