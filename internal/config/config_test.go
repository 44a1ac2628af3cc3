package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 60*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "openai", cfg.OpenAI.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Prompts.File)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("OPENAI_PROVIDER", "azure")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "azure", cfg.OpenAI.Provider)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	os.Unsetenv("OPENAI_API_KEY")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadClientConfig(t *testing.T) {
	t.Setenv("COPYWRITER_API_URL", "http://copy.internal:8000")

	cfg, err := LoadClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://copy.internal:8000", cfg.APIURL)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
}

func TestLoadPromptsDefaults(t *testing.T) {
	p, err := LoadPrompts("")
	require.NoError(t, err)

	assert.Equal(t, DefaultSystemPrompt, p.System)
	assert.Equal(t, DefaultTones, p.Tones)
	assert.Equal(t, DefaultTone, p.DefaultTone)
	assert.Contains(t, p.System, `{"titles": ["제목1", "제목2", "제목3"]}`)
}

func TestLoadPromptsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	yaml := `system: "Write three subject lines as JSON {\"titles\": [...]}"
user: "Body: {content}\nTone: {tone}"
tones:
  - plain
  - urgent
default_tone: plain
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	p, err := LoadPrompts(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"plain", "urgent"}, p.Tones)
	assert.Equal(t, "plain", p.DefaultTone)
	assert.Equal(t, "Body: hello there\nTone: urgent", p.UserMessage("hello there", "urgent"))
}

func TestLoadPromptsEnvOverride(t *testing.T) {
	t.Setenv("PROMPT_DEFAULT_TONE", "세일즈 중심")

	p, err := LoadPrompts("")
	require.NoError(t, err)
	assert.Equal(t, "세일즈 중심", p.DefaultTone)
}

func TestLoadPromptsRejectsTemplateWithoutContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user: \"no placeholder\"\n"), 0o600))

	_, err := LoadPrompts(path)
	assert.Error(t, err)
}

func TestLoadPromptsMissingFile(t *testing.T) {
	_, err := LoadPrompts(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestUserMessageDoesNotExpandPlaceholdersInContent(t *testing.T) {
	p, err := LoadPrompts("")
	require.NoError(t, err)

	msg := p.UserMessage("본문에 {tone} 이라는 글자가 있습니다", "긴급한 느낌")
	assert.Equal(t, "이메일 본문: 본문에 {tone} 이라는 글자가 있습니다\n요청하는 톤: 긴급한 느낌", msg)
}
