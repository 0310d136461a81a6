package ai

// ModelPreset selects sampling parameters for a generation call.
type ModelPreset string

const (
	PresetCreative ModelPreset = "creative"
	PresetPrecise  ModelPreset = "precise"
	PresetBalanced ModelPreset = "balanced"
)

type ModelConfig struct {
	Temperature     float32
	TopP            float32
	TopK            int
	MaxOutputTokens int
}

type OpenAIConfig struct {
	Temperature float32
	MaxTokens   int
	TopP        float32
}

// GenerateMetadata records which provider produced a reply.
type GenerateMetadata struct {
	Provider     string
	Model        string
	UsedFallback bool
}

type GenerateOptions struct {
	Model     string
	Overrides *ModelConfig
}

func GetPresetConfig(preset ModelPreset) ModelConfig {
	switch preset {
	case PresetCreative:
		return ModelConfig{
			Temperature:     0.7,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 1024,
		}
	case PresetPrecise:
		return ModelConfig{
			Temperature:     0.1,
			TopP:            0.9,
			TopK:            20,
			MaxOutputTokens: 512,
		}
	case PresetBalanced:
		return ModelConfig{
			Temperature:     0.4,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 1024,
		}
	default:
		return GetPresetConfig(PresetBalanced)
	}
}

func GetOpenAIPresetConfig(preset ModelPreset) OpenAIConfig {
	switch preset {
	case PresetCreative:
		return OpenAIConfig{Temperature: 0.7, MaxTokens: 1024, TopP: 0.95}
	case PresetPrecise:
		return OpenAIConfig{Temperature: 0.1, MaxTokens: 512, TopP: 0.9}
	case PresetBalanced:
		return OpenAIConfig{Temperature: 0.4, MaxTokens: 1024, TopP: 0.95}
	default:
		return GetOpenAIPresetConfig(PresetBalanced)
	}
}
