package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultSystemPrompt = `당신은 매력적인 이메일 제목을 만드는 전문 카피라이터입니다.
사용자가 제공하는 이메일 본문을 분석하여, 클릭률을 높일 수 있는 매력적인 제목 3가지를 제안하세요.
반드시 다음과 같은 JSON 형식으로만 응답하세요: {"titles": ["제목1", "제목2", "제목3"]}`

	DefaultUserPrompt = "이메일 본문: {content}\n요청하는 톤: {tone}"

	DefaultTone = "기본"
)

// DefaultTones mirrors the tone selector of the web front end.
var DefaultTones = []string{
	DefaultTone,
	"긴급한 느낌",
	"부드러운 느낌",
	"신뢰감 있는 느낌",
	"세일즈 중심",
	"호기심 유발형",
}

// Prompts is the prompt catalog used to build the upstream request.
type Prompts struct {
	System      string   `mapstructure:"system"`
	User        string   `mapstructure:"user"`
	Tones       []string `mapstructure:"tones"`
	DefaultTone string   `mapstructure:"default_tone"`
}

// LoadPrompts returns the built-in catalog, overridden by the YAML file at
// path (when not empty) and by PROMPT_SYSTEM, PROMPT_USER, PROMPT_DEFAULT_TONE.
func LoadPrompts(path string) (*Prompts, error) {
	v := viper.New()
	v.SetDefault("system", DefaultSystemPrompt)
	v.SetDefault("user", DefaultUserPrompt)
	v.SetDefault("tones", DefaultTones)
	v.SetDefault("default_tone", DefaultTone)

	v.SetEnvPrefix("prompt")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading prompt catalog %s: %w", path, err)
		}
		slog.Info("prompt catalog loaded", "file", v.ConfigFileUsed())
	}

	var p Prompts
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("decoding prompt catalog: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Prompts) validate() error {
	if strings.TrimSpace(p.System) == "" {
		return fmt.Errorf("prompt catalog: system prompt is empty")
	}
	if !strings.Contains(p.User, "{content}") {
		return fmt.Errorf("prompt catalog: user prompt must contain {content}")
	}
	if p.DefaultTone == "" {
		p.DefaultTone = DefaultTone
	}
	return nil
}

// UserMessage fills the user prompt template.
func (p *Prompts) UserMessage(content, tone string) string {
	return strings.NewReplacer("{content}", content, "{tone}", tone).Replace(p.User)
}
