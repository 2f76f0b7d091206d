package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"clean object", `{"title":"Hà Nội"}`, `{"title":"Hà Nội"}`},
		{"fenced", "```json\n{\"title\":\"Huế\"}\n```", `{"title":"Huế"}`},
		{"surrounding prose", "Đây là lịch trình:\n{\"title\":\"Đà Lạt\"}\nChúc vui!", `{"title":"Đà Lạt"}`},
		{"braces inside strings", `{"title":"a } b","days":[]} trailing`, `{"title":"a } b","days":[]}`},
		{"array", `noise [1,[2,3]] more`, `[1,[2,3]]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONResponse(tt.raw))
		})
	}
}

func TestValidJSONOrError(t *testing.T) {
	got, err := validJSONOrError("```\n{\"title\":\"Hội An\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, `{"title":"Hội An"}`, got)

	_, err = validJSONOrError("không phải JSON")
	assert.ErrorIs(t, err, ErrUnexpectedBehaviorOfAI)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "Hà...", Truncate("Hà Nội", 2))
}

func TestNewAIClient_UnsupportedProvider(t *testing.T) {
	_, err := NewAIClient("ollama", "key", "")
	assert.Error(t, err)
}

func TestNewAIClient_OpenAI(t *testing.T) {
	client, err := NewAIClient("OpenAI", "key", "")
	require.NoError(t, err)
	assert.NoError(t, client.Close())
}
