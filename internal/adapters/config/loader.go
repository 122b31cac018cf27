// Package config reads and writes the avg configuration file. JSON is the
// default format; TOML and YAML are picked by file extension.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/bnema/aistudio-video-cli/internal/domain"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	DefaultPath = "config.json"
	EnvPrefix   = "AVG"

	profilesKey = "profiles"
)

type Loader struct {
	fs afero.Fs
}

func NewLoader(fsys afero.Fs) *Loader {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	return &Loader{fs: fsys}
}

// Load reads path with AVG_* environment overrides applied and validates the
// result. A missing file is ErrConfigNotFound; anything else that stops a run
// is ErrConfigInvalid.
func Load(path string) (domain.Config, error) {
	return NewLoader(nil).Load(path)
}

func (l *Loader) Load(path string) (domain.Config, error) {
	v, err := l.read(path, true)
	if err != nil {
		return domain.Config{}, err
	}
	if !v.IsSet(profilesKey) {
		return domain.Config{}, fmt.Errorf("%w: %s: profiles is required", domain.ErrConfigInvalid, path)
	}

	cfg, err := decode(path, v)
	if err != nil {
		return domain.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("%w: %s: %w", domain.ErrConfigInvalid, path, err)
	}

	return cfg, nil
}

// LoadFile reads path as written, without environment overrides or required
// field checks. Editing commands use it so they can repair a partial file.
func (l *Loader) LoadFile(path string) (domain.Config, error) {
	v, err := l.read(path, false)
	if err != nil {
		return domain.Config{}, err
	}

	return decode(path, v)
}

func (l *Loader) read(path string, withEnv bool) (*viper.Viper, error) {
	v := viper.New()
	v.SetFs(l.fs)
	v.SetConfigFile(path)
	setDefaults(v)

	if withEnv {
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
		_ = v.BindEnv(profilesKey)
	}

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrConfigInvalid, path, err)
	}

	return v, nil
}

func decode(path string, v *viper.Viper) (domain.Config, error) {
	var file fileSchema
	if err := v.Unmarshal(&file); err != nil {
		return domain.Config{}, fmt.Errorf("%w: decode %s: %v", domain.ErrConfigInvalid, path, err)
	}

	cfg, err := fromSchema(file)
	if err != nil {
		return domain.Config{}, fmt.Errorf("%w: %s: %v", domain.ErrConfigInvalid, path, err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := toSchema(domain.DefaultConfig())

	v.SetDefault("browser.driver", defaults.Browser.Driver)
	v.SetDefault("browser.execPath", "")
	v.SetDefault("browser.debugPort", defaults.Browser.DebugPort)
	v.SetDefault("browser.headless", defaults.Browser.Headless)

	v.SetDefault("job.targetUrl", defaults.Job.TargetURL)
	v.SetDefault("job.prompt", defaults.Job.Prompt)
	v.SetDefault("job.video.aspectRatio", defaults.Job.Video.AspectRatio)
	v.SetDefault("job.video.duration", defaults.Job.Video.Duration)
	v.SetDefault("job.video.resolution", defaults.Job.Video.Resolution)

	v.SetDefault("timeouts.navigation", defaults.Timeouts.Navigation)
	v.SetDefault("timeouts.login", defaults.Timeouts.Login)
	v.SetDefault("timeouts.prompt", defaults.Timeouts.Prompt)
	v.SetDefault("timeouts.option", defaults.Timeouts.Option)
	v.SetDefault("timeouts.submit", defaults.Timeouts.Submit)
	v.SetDefault("timeouts.download", defaults.Timeouts.Download)
	v.SetDefault("timeouts.maxWait", defaults.Timeouts.MaxWait)
	v.SetDefault("timeouts.checkInterval", defaults.Timeouts.CheckInterval)

	v.SetDefault("userDataPath", "")
	v.SetDefault("saveDir", "")
}
