package store

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config carries the settings shared by every command.
type Config interface {
	// CatalogPath is a diskv catalog directory; empty means the compiled-in catalog.
	CatalogPath() string
	LogFile() string
	Verbose() bool
}

const (
	KeyCatalog = "catalog"
	KeyLogFile = "log-file"
	KeyVerbose = "verbose"
)

// LoadConfig reads .archive.yaml from ARCHIVE_CONFIG_PATH or the working
// directory, then applies ARCHIVE_* environment overrides. Flags bound to v
// with BindPFlag win over both.
func LoadConfig(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.GetViper()
	}
	v.SetDefault(KeyCatalog, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyVerbose, false)
	v.SetConfigName(".archive") // .yaml is implicit
	v.SetEnvPrefix("ARCHIVE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("ARCHIVE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &fileConfig{
		Catalog: v.GetString(KeyCatalog),
		Log:     v.GetString(KeyLogFile),
		Debug:   v.GetBool(KeyVerbose),
	}, nil
}

type fileConfig struct {
	Catalog string `json:"catalog"`
	Log     string `json:"logFile"`
	Debug   bool   `json:"verbose"`
}

func (f *fileConfig) CatalogPath() string { return f.Catalog }
func (f *fileConfig) LogFile() string     { return f.Log }
func (f *fileConfig) Verbose() bool       { return f.Debug }

// StaticConfig is a Config built in code, mostly for tests.
type StaticConfig struct {
	Catalog string
	Log     string
	Debug   bool
}

func (s StaticConfig) CatalogPath() string { return s.Catalog }
func (s StaticConfig) LogFile() string     { return s.Log }
func (s StaticConfig) Verbose() bool       { return s.Debug }
