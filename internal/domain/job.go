package domain

const (
	DefaultTargetURL = "https://aistudio.google.com/generate-video"
	DefaultPrompt    = "a cinematic aerial shot of a futuristic city glowing at night, flying cars in the sky, 16:9 aspect ratio, 8 seconds duration"
)

type VideoSettings struct {
	AspectRatio string
	Duration    string
	Resolution  string
}

func DefaultVideoSettings() VideoSettings {
	return VideoSettings{
		AspectRatio: "16:9",
		Duration:    "8s",
		Resolution:  "720p",
	}
}

// OptionName identifies one generation option control on the target page.
type OptionName string

const (
	OptionAspectRatio OptionName = "aspectRatio"
	OptionDuration    OptionName = "duration"
	OptionResolution  OptionName = "resolution"
)

type VideoOption struct {
	Name  OptionName
	Value string
}

// Options lists the settings in the order they are applied. Empty values are
// skipped.
func (v VideoSettings) Options() []VideoOption {
	all := []VideoOption{
		{Name: OptionAspectRatio, Value: v.AspectRatio},
		{Name: OptionDuration, Value: v.Duration},
		{Name: OptionResolution, Value: v.Resolution},
	}

	options := make([]VideoOption, 0, len(all))
	for _, option := range all {
		if option.Value == "" {
			continue
		}
		options = append(options, option)
	}
	return options
}

// Job is what one session submits to the generator.
type Job struct {
	TargetURL string
	Prompt    string
	Video     VideoSettings
}
