// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/webtoon/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Solo Leveling", "solo-leveling"},
		{"punctuation", "Tower of God: Part 2!", "tower-of-god-part-2"},
		{"accents", "Café Noir", "cafe-noir"},
		{"vietnamese", "Truyện Tranh", "truyen-tranh"},
		{"collapse", "  a -- b  ", "a-b"},
		{"digits", "100 Days", "100-days"},
		{"only_symbols", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
