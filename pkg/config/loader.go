package config

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix scopes the environment variables read by the loader.
const EnvPrefix = "FIXTURE_"

// Service loads and validates configuration.
type Service interface {
	Load(ctx context.Context, sources ...Source) (*Config, error)
	Validate(cfg *Config) error
	GetMetadata() Metadata
}

// Metadata records the final value of each key and where it came from.
type Metadata struct {
	Sources  map[string]SourceType
	Values   map[string]any
	LoadedAt time.Time
}

// loader implements the Service interface for configuration management.
type loader struct {
	koanf      *koanf.Koanf
	validator  *validator.Validate
	metadata   Metadata
	metadataMu sync.RWMutex
}

// NewService creates a new configuration service with validation support.
func NewService() Service {
	v := validator.New()
	if err := RegisterCustomValidators(v); err != nil {
		panic(fmt.Sprintf("failed to register config validators: %v", err))
	}
	return &loader{
		koanf:     koanf.New("."),
		validator: v,
		metadata: Metadata{
			Sources: make(map[string]SourceType),
		},
	}
}

// Load is a shortcut for NewService().Load.
func Load(ctx context.Context, sources ...Source) (*Config, error) {
	return NewService().Load(ctx, sources...)
}

// Load applies defaults, then file sources in order, then the environment,
// then CLI sources. Later layers win.
func (l *loader) Load(_ context.Context, sources ...Source) (*Config, error) {
	l.reset()
	if err := l.loadDefaults(); err != nil {
		return nil, err
	}
	var files, flags []Source
	for _, source := range sources {
		switch {
		case source == nil:
		case source.Type() == SourceCLI:
			flags = append(flags, source)
		default:
			files = append(files, source)
		}
	}
	if err := l.loadSources(files); err != nil {
		return nil, err
	}
	if err := l.loadEnvironment(); err != nil {
		return nil, err
	}
	if err := l.loadSources(flags); err != nil {
		return nil, err
	}
	l.metadataMu.Lock()
	l.metadata.Values = l.koanf.All()
	l.metadataMu.Unlock()
	return l.unmarshalAndValidate()
}

// Keys lists every configuration key in dotted form, sorted.
func Keys() []string {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil
	}
	keys := k.Keys()
	slices.Sort(keys)
	return keys
}

func (l *loader) reset() {
	l.koanf = koanf.New(".")

	l.metadataMu.Lock()
	l.metadata.Sources = make(map[string]SourceType)
	l.metadata.Values = nil
	l.metadata.LoadedAt = time.Now()
	l.metadataMu.Unlock()
}

func (l *loader) loadDefaults() error {
	if err := l.koanf.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return fmt.Errorf("failed to load defaults: %w", err)
	}
	for _, key := range l.koanf.Keys() {
		l.trackSource(key, SourceDefault)
	}
	return nil
}

// transformEnvKey converts environment variable names to koanf paths.
// For example: FIXTURE_TEXT_MAX_LENGTH -> text.max_length
func transformEnvKey(s string) string {
	if !strings.HasPrefix(s, EnvPrefix) {
		return ""
	}
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_'
	})
	if len(parts) < 2 {
		return ""
	}
	return parts[0] + "." + strings.Join(parts[1:], "_")
}

func (l *loader) loadEnvironment() error {
	before := l.snapshot()
	if err := l.koanf.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key string, value string) (string, any) {
			return transformEnvKey(key), value
		},
	}), nil); err != nil {
		return fmt.Errorf("failed to load environment variables: %w", err)
	}
	l.trackChanges(before, SourceEnv)
	return nil
}

func (l *loader) loadSources(sources []Source) error {
	for _, source := range sources {
		if source == nil {
			continue
		}
		data, err := source.Load()
		if err != nil {
			return fmt.Errorf("failed to load from source %s: %w", source.Type(), err)
		}
		if len(data) == 0 {
			continue
		}
		before := l.snapshot()
		if err := l.koanf.Load(rawMap(data), nil); err != nil {
			return fmt.Errorf("failed to apply source %s: %w", source.Type(), err)
		}
		l.trackChanges(before, source.Type())
	}
	return nil
}

func (l *loader) snapshot() map[string]any {
	out := make(map[string]any, len(l.koanf.Keys()))
	for _, key := range l.koanf.Keys() {
		out[key] = l.koanf.Get(key)
	}
	return out
}

func (l *loader) trackChanges(before map[string]any, source SourceType) {
	for _, key := range l.koanf.Keys() {
		prev, existed := before[key]
		if !existed || fmt.Sprint(prev) != fmt.Sprint(l.koanf.Get(key)) {
			l.trackSource(key, source)
		}
	}
}

func (l *loader) trackSource(key string, source SourceType) {
	l.metadataMu.Lock()
	l.metadata.Sources[key] = source
	l.metadataMu.Unlock()
}

func (l *loader) unmarshalAndValidate() (*Config, error) {
	var config Config
	if err := l.koanf.UnmarshalWithConf("", &config, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &config,
			TagName:          "koanf",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := l.Validate(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

func (l *loader) Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}
	return l.validator.Struct(cfg)
}

func (l *loader) GetMetadata() Metadata {
	l.metadataMu.RLock()
	defer l.metadataMu.RUnlock()
	return Metadata{
		Sources:  maps.Clone(l.metadata.Sources),
		Values:   maps.Clone(l.metadata.Values),
		LoadedAt: l.metadata.LoadedAt,
	}
}

// rawMap is a koanf.Provider adapter for map[string]any data.
type rawMap map[string]any

func (r rawMap) Read() (map[string]any, error) {
	return r, nil
}

func (r rawMap) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("ReadBytes not implemented")
}
