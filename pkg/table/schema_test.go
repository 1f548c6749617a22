package table

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateForm(t *testing.T) {
	fields := []FormField{
		{Type: RenderInput, Field: "nickname", Label: "Nickname", Required: true},
		{Type: RenderMultiSelect, Field: "roles", Label: "Roles", Required: true, Options: []Option{}},
		{Type: RenderInput, Field: "avatar", Label: "Avatar"},
	}

	tests := []struct {
		name    string
		payload string
		missing string
	}{
		{"all present", `{"nickname":"ada","roles":[1]}`, ""},
		{"optional absent is fine", `{"nickname":"ada","roles":[1],"avatar":""}`, ""},
		{"absent key", `{"roles":[1]}`, "nickname"},
		{"empty string", `{"nickname":"","roles":[1]}`, "nickname"},
		{"null", `{"nickname":null,"roles":[1]}`, "nickname"},
		{"empty list", `{"nickname":"ada","roles":[]}`, "roles"},
		{"empty payload", ``, "nickname, roles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateForm(fields, json.RawMessage(tt.payload))
			if tt.missing == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrMissingField)
			assert.ErrorContains(t, err, tt.missing)
		})
	}
}

func TestValidateForm_NoRequiredFields(t *testing.T) {
	fields := []FormField{{Type: RenderInput, Field: "avatar", Label: "Avatar"}}
	assert.NoError(t, ValidateForm(fields, json.RawMessage(`{}`)))
}

func TestValidateForm_InvalidJSON(t *testing.T) {
	err := ValidateForm(nil, json.RawMessage(`{`))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingField)
}

func TestFormFieldValidate(t *testing.T) {
	assert.NoError(t, LikeSearch("tag_name", "Tag").Validate())
	assert.Error(t, FormField{Type: RenderInput, Label: "x"}.Validate())
	assert.Error(t, FormField{Type: "slider", Field: "x"}.Validate())
	assert.Error(t, FormField{Type: RenderSelect, Field: "x"}.Validate())
}
