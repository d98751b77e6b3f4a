package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"google.golang.org/genai"

	"github.com/ternarybob/smarttravellers/internal/common"
	"github.com/ternarybob/smarttravellers/internal/interfaces"
)

func newTestFactory(defaultProvider common.LLMProvider) *ProviderFactory {
	cfg := common.NewDefaultConfig()
	cfg.LLM.DefaultProvider = defaultProvider
	return NewProviderFactory(&cfg.Gemini, &cfg.Claude, &cfg.LLM, arbor.NewLogger())
}

func TestDetectProvider(t *testing.T) {
	tests := []struct {
		model           string
		defaultProvider common.LLMProvider
		want            ProviderType
	}{
		{"claude-3-5-haiku-20241022", common.LLMProviderGemini, ProviderClaude},
		{"Claude/claude-3-opus", common.LLMProviderGemini, ProviderClaude},
		{"anthropic/claude-3-opus", common.LLMProviderGemini, ProviderClaude},
		{"gemini-2.0-flash", common.LLMProviderClaude, ProviderGemini},
		{"google/gemini-2.0-flash", common.LLMProviderClaude, ProviderGemini},
		{"", common.LLMProviderGemini, ProviderGemini},
		{"", common.LLMProviderClaude, ProviderClaude},
		{"some-other-model", common.LLMProviderClaude, ProviderClaude},
		{"", "", ProviderGemini},
	}

	for _, tt := range tests {
		t.Run(tt.model+"/"+string(tt.defaultProvider), func(t *testing.T) {
			assert.Equal(t, tt.want, newTestFactory(tt.defaultProvider).DetectProvider(tt.model))
		})
	}
}

func TestNormalizeModel(t *testing.T) {
	f := newTestFactory(common.LLMProviderGemini)

	assert.Equal(t, "claude-3-opus", f.NormalizeModel("claude/claude-3-opus"))
	assert.Equal(t, "gemini-2.0-flash", f.NormalizeModel("GOOGLE/gemini-2.0-flash"))
	assert.Equal(t, "gemini-2.0-flash", f.NormalizeModel("gemini-2.0-flash"))
	assert.Equal(t, "", f.NormalizeModel(""))
}

func TestGetDefaultModel(t *testing.T) {
	f := newTestFactory(common.LLMProviderGemini)

	assert.Equal(t, "gemini-2.0-flash", f.GetDefaultModel(ProviderGemini))
	assert.Equal(t, "claude-3-5-haiku-20241022", f.GetDefaultModel(ProviderClaude))
}

func TestComplete_MissingKeys(t *testing.T) {
	messages := []interfaces.Message{{Role: RoleUser, Content: "Plan 3 days in Goa"}}

	_, err := newTestFactory(common.LLMProviderGemini).Complete(context.Background(), "persona", messages)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Gemini API key is required")

	_, err = newTestFactory(common.LLMProviderClaude).Complete(context.Background(), "persona", messages)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Anthropic API key is required")
}

func TestComplete_RejectsHistoryWithoutUser(t *testing.T) {
	_, err := newTestFactory(common.LLMProviderGemini).Complete(context.Background(), "", []interfaces.Message{
		{Role: RoleAssistant, Content: "Hello"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role 'user'")
}

func TestConvertMessagesToGemini(t *testing.T) {
	contents, system, err := convertMessagesToGemini([]interfaces.Message{
		{Role: RoleSystem, Content: "be helpful"},
		{Role: RoleUser, Content: "Plan a trip"},
		{Role: RoleAssistant, Content: "Where to?"},
		{Role: RoleSystem, Content: "ignored"},
		{Role: RoleUser, Content: "Goa"},
	})
	require.NoError(t, err)

	assert.Equal(t, "be helpful", system)
	require.Len(t, contents, 3)
	assert.Equal(t, genai.RoleUser, contents[0].Role)
	assert.Equal(t, genai.RoleModel, contents[1].Role)
	assert.Equal(t, "Where to?", contents[1].Parts[0].Text)
	assert.Equal(t, genai.RoleUser, contents[2].Role)

	_, _, err = convertMessagesToGemini(nil)
	assert.Error(t, err)
}

func TestConvertMessagesToClaude(t *testing.T) {
	params, system, err := convertMessagesToClaude([]interfaces.Message{
		{Role: RoleSystem, Content: "be helpful"},
		{Role: RoleUser, Content: "Plan a trip"},
		{Role: RoleAssistant, Content: "Where to?"},
	})
	require.NoError(t, err)

	assert.Equal(t, "be helpful", system)
	require.Len(t, params, 2)
	assert.Equal(t, anthropic.MessageParamRoleUser, params[0].Role)
	assert.Equal(t, anthropic.MessageParamRoleAssistant, params[1].Role)

	_, _, err = convertMessagesToClaude([]interfaces.Message{{Role: RoleSystem, Content: "only system"}})
	assert.Error(t, err)
}

func TestCallWithRetry(t *testing.T) {
	rateLimited := errors.New("Error 429, Message: Please retry in 2s., Status: RESOURCE_EXHAUSTED")

	tests := []struct {
		name      string
		errs      []error
		wantCalls int
		wantWaits []time.Duration
		wantErr   bool
	}{
		{"success first time", []error{nil}, 1, nil, false},
		{"rate limited then success", []error{rateLimited, nil}, 2, []time.Duration{3 * time.Second}, false},
		{"rate limited twice", []error{rateLimited, rateLimited}, 2, []time.Duration{3 * time.Second}, true},
		{"other errors are not retried", []error{errors.New("invalid argument")}, 1, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFactory(common.LLMProviderGemini)
			var waits []time.Duration
			f.sleep = func(ctx context.Context, d time.Duration) error {
				waits = append(waits, d)
				return nil
			}

			calls := 0
			err := f.callWithRetry(context.Background(), ProviderGemini, func(ctx context.Context) error {
				e := tt.errs[calls]
				calls++
				return e
			})

			assert.Equal(t, tt.wantCalls, calls)
			assert.Equal(t, tt.wantWaits, waits)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, parseTimeout("30s"))
	assert.Equal(t, defaultTimeout, parseTimeout(""))
	assert.Equal(t, defaultTimeout, parseTimeout("soon"))
	assert.Equal(t, defaultTimeout, parseTimeout("-1s"))
}
