package config

import (
	"fmt"
	"time"

	"github.com/bnema/aistudio-video-cli/internal/domain"
)

// fileSchema is the on-disk shape of the configuration. Durations are kept as
// strings ("60s", "5m") so every encoding stays human-editable.
type fileSchema struct {
	UserDataPath string         `json:"userDataPath" toml:"userDataPath" yaml:"userDataPath" mapstructure:"userDataPath"`
	Profiles     []string       `json:"profiles" toml:"profiles" yaml:"profiles" mapstructure:"profiles"`
	SaveDir      string         `json:"saveDir" toml:"saveDir" yaml:"saveDir" mapstructure:"saveDir"`
	Browser      browserSchema  `json:"browser" toml:"browser" yaml:"browser" mapstructure:"browser"`
	Job          jobSchema      `json:"job" toml:"job" yaml:"job" mapstructure:"job"`
	Timeouts     timeoutsSchema `json:"timeouts" toml:"timeouts" yaml:"timeouts" mapstructure:"timeouts"`
}

type browserSchema struct {
	Driver    string `json:"driver" toml:"driver" yaml:"driver" mapstructure:"driver"`
	ExecPath  string `json:"execPath,omitempty" toml:"execPath,omitempty" yaml:"execPath,omitempty" mapstructure:"execPath"`
	DebugPort int    `json:"debugPort" toml:"debugPort" yaml:"debugPort" mapstructure:"debugPort"`
	Headless  bool   `json:"headless" toml:"headless" yaml:"headless" mapstructure:"headless"`
}

type jobSchema struct {
	TargetURL string      `json:"targetUrl" toml:"targetUrl" yaml:"targetUrl" mapstructure:"targetUrl"`
	Prompt    string      `json:"prompt" toml:"prompt" yaml:"prompt" mapstructure:"prompt"`
	Video     videoSchema `json:"video" toml:"video" yaml:"video" mapstructure:"video"`
}

type videoSchema struct {
	AspectRatio string `json:"aspectRatio" toml:"aspectRatio" yaml:"aspectRatio" mapstructure:"aspectRatio"`
	Duration    string `json:"duration" toml:"duration" yaml:"duration" mapstructure:"duration"`
	Resolution  string `json:"resolution" toml:"resolution" yaml:"resolution" mapstructure:"resolution"`
}

type timeoutsSchema struct {
	Navigation    string `json:"navigation" toml:"navigation" yaml:"navigation" mapstructure:"navigation"`
	Login         string `json:"login" toml:"login" yaml:"login" mapstructure:"login"`
	Prompt        string `json:"prompt" toml:"prompt" yaml:"prompt" mapstructure:"prompt"`
	Option        string `json:"option" toml:"option" yaml:"option" mapstructure:"option"`
	Submit        string `json:"submit" toml:"submit" yaml:"submit" mapstructure:"submit"`
	Download      string `json:"download" toml:"download" yaml:"download" mapstructure:"download"`
	MaxWait       string `json:"maxWait" toml:"maxWait" yaml:"maxWait" mapstructure:"maxWait"`
	CheckInterval string `json:"checkInterval" toml:"checkInterval" yaml:"checkInterval" mapstructure:"checkInterval"`
}

func toSchema(cfg domain.Config) fileSchema {
	profiles := make([]string, 0, len(cfg.Profiles))
	for _, profile := range cfg.Profiles {
		profiles = append(profiles, string(profile))
	}

	return fileSchema{
		UserDataPath: cfg.UserDataPath,
		Profiles:     profiles,
		SaveDir:      cfg.SaveDir,
		Browser: browserSchema{
			Driver:    string(cfg.Browser.Driver),
			ExecPath:  cfg.Browser.ExecPath,
			DebugPort: cfg.Browser.DebugPort,
			Headless:  cfg.Browser.Headless,
		},
		Job: jobSchema{
			TargetURL: cfg.Job.TargetURL,
			Prompt:    cfg.Job.Prompt,
			Video: videoSchema{
				AspectRatio: cfg.Job.Video.AspectRatio,
				Duration:    cfg.Job.Video.Duration,
				Resolution:  cfg.Job.Video.Resolution,
			},
		},
		Timeouts: timeoutsSchema{
			Navigation:    cfg.Timeouts.Navigation.String(),
			Login:         cfg.Timeouts.Login.String(),
			Prompt:        cfg.Timeouts.Prompt.String(),
			Option:        cfg.Timeouts.Option.String(),
			Submit:        cfg.Timeouts.Submit.String(),
			Download:      cfg.Timeouts.Download.String(),
			MaxWait:       cfg.Timeouts.MaxWait.String(),
			CheckInterval: cfg.Timeouts.CheckInterval.String(),
		},
	}
}

func fromSchema(file fileSchema) (domain.Config, error) {
	profiles := make([]domain.Profile, 0, len(file.Profiles))
	for _, profile := range file.Profiles {
		profiles = append(profiles, domain.Profile(profile))
	}

	timeouts, err := parseTimeouts(file.Timeouts)
	if err != nil {
		return domain.Config{}, err
	}

	return domain.Config{
		UserDataPath: file.UserDataPath,
		Profiles:     profiles,
		SaveDir:      file.SaveDir,
		Browser: domain.BrowserOptions{
			Driver:    domain.Driver(file.Browser.Driver),
			ExecPath:  file.Browser.ExecPath,
			DebugPort: file.Browser.DebugPort,
			Headless:  file.Browser.Headless,
		},
		Job: domain.Job{
			TargetURL: file.Job.TargetURL,
			Prompt:    file.Job.Prompt,
			Video: domain.VideoSettings{
				AspectRatio: file.Job.Video.AspectRatio,
				Duration:    file.Job.Video.Duration,
				Resolution:  file.Job.Video.Resolution,
			},
		},
		Timeouts: timeouts,
	}, nil
}

func parseTimeouts(raw timeoutsSchema) (domain.Timeouts, error) {
	var timeouts domain.Timeouts
	fields := []struct {
		key   string
		value string
		dst   *time.Duration
	}{
		{"timeouts.navigation", raw.Navigation, &timeouts.Navigation},
		{"timeouts.login", raw.Login, &timeouts.Login},
		{"timeouts.prompt", raw.Prompt, &timeouts.Prompt},
		{"timeouts.option", raw.Option, &timeouts.Option},
		{"timeouts.submit", raw.Submit, &timeouts.Submit},
		{"timeouts.download", raw.Download, &timeouts.Download},
		{"timeouts.maxWait", raw.MaxWait, &timeouts.MaxWait},
		{"timeouts.checkInterval", raw.CheckInterval, &timeouts.CheckInterval},
	}

	for _, field := range fields {
		d, err := time.ParseDuration(field.value)
		if err != nil {
			return domain.Timeouts{}, fmt.Errorf("%s: %w", field.key, err)
		}
		*field.dst = d
	}

	return timeouts, nil
}
