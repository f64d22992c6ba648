// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/webtoon/internal/platform/apperr"
	"github.com/taibuivan/webtoon/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "title", "Epic Adventure", false},
		{"empty_string", "title", "", true},
		{"whitespace_only", "title", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Slug checks the URL slug format rule.
*/
func TestValidator_Slug(t *testing.T) {
	tests := []struct {
		slug    string
		isValid bool
	}{
		{"epic-adventure", true},
		{"love-and-dreams-2", true},
		{"solo", true},
		{"Epic-Adventure", false},
		{"epic--adventure", false},
		{"-epic", false},
		{"epic adventure", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			v := &validate.Validator{}
			v.Slug("slug", tt.slug)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_URL checks that optional URLs must be absolute http(s).
*/
func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"empty_is_optional", "", true},
		{"https", "https://cdn.example.com/cover.jpg", true},
		{"http", "http://localhost:9000/c.png", true},
		{"relative", "/covers/1.png", false},
		{"ftp", "ftp://example.com/c.png", false},
		{"garbage", "::not a url", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.URL("cover_url", tt.value)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain verifies that multiple failures are collected in order.
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}
	v.Required("title", "").
		MaxLen("author", "abcdef", 3).
		URL("cover_url", "ftp://example.com/cover.png").
		Custom("number", true, "Chapter number cannot be negative")

	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	require.Len(t, ae.Details, 4)
	assert.Equal(t, "title", ae.Details[0].Field)
	assert.Equal(t, "author", ae.Details[1].Field)
	assert.Equal(t, "Must be an absolute http or https URL", ae.Details[2].Message)
	assert.Equal(t, "number", ae.Details[3].Field)
}
