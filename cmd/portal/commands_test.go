// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/webtoon/internal/portal"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

/*
TestPortal_DemoCommands runs each view against the demo catalogue.
*/
func TestPortal_DemoCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default_home", []string{"--demo"}, "Recently added"},
		{"home", []string{"--demo", "home"}, "5 comics"},
		{"browse_status", []string{"--demo", "browse", "--status", "hiatus"}, "Lore Olympus"},
		{"browse_search", []string{"--demo", "browse", "-s", "leveling", "--sort", "title"}, "Solo Leveling"},
		{"stats", []string{"--demo", "stats"}, "Statistics"},
		{"chapters", []string{"--demo", "chapters", "tower-of-god"}, "Chapters of tower-of-god (3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

/*
TestPortal_Errors covers argument and read-only failures.
*/
func TestPortal_Errors(t *testing.T) {
	_, err := execute(t, "--demo", "chapters")
	assert.Error(t, err)

	_, err = execute(t, "--demo", "add", "--title", "Omniscient Reader")
	assert.ErrorIs(t, err, portal.ErrReadOnly)

	_, err = execute(t, "--demo", "add", "--author", "Nobody")
	assert.Error(t, err)

	_, err = execute(t, "--demo", "browse", "--sort", "rating")
	assert.Error(t, err)
}
