package cli

import (
	"context"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix prefixes every environment variable, e.g. SAMM_MAPPER_OUTPUT.
const envPrefix = "SAMM_MAPPER"

// Settings are the CLI defaults. Flags given on the command line win.
type Settings struct {
	// Output is the directory generate writes into.
	Output string `mapstructure:"output" default:"output"`
	// Mapping is a mapping file applied when --mapping is not given.
	Mapping string `mapstructure:"mapping" default:""`
	// ReportFormat is json or yaml.
	ReportFormat string `mapstructure:"report_format" default:"json"`
	// Collections is parallel or objects; empty keeps the mapping file's choice.
	Collections string `mapstructure:"collections" default:""`
	// Concurrency bounds batch jobs; 0 means GOMAXPROCS.
	Concurrency int `mapstructure:"concurrency" default:"0"`
}

// LoadSettings reads dir/.env when present, then the environment.
func LoadSettings(dir string) (*Settings, error) {
	// A missing .env is fine.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	bindValues(v, Settings{}, "")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, err
	}

	return &s, nil
}

// bindValues registers every mapstructure key with its default tag so that
// AutomaticEnv can see it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)

			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}

func withSettings(ctx context.Context, s *Settings) context.Context {
	return context.WithValue(ctx, settingsKey, s)
}

// settingsFromContext returns the attached settings, or the defaults.
func settingsFromContext(ctx context.Context) *Settings {
	if s, ok := ctx.Value(settingsKey).(*Settings); ok {
		return s
	}

	return &Settings{Output: "output", ReportFormat: "json"}
}
