// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/webtoon/pkg/pointer"
)

func TestPointer(t *testing.T) {
	value := pointer.To("solo-leveling")
	assert.Equal(t, "solo-leveling", *value)

	// Each call points at its own copy
	other := pointer.To("solo-leveling")
	assert.NotSame(t, value, other)
	*other = "tower-of-god"
	assert.Equal(t, "solo-leveling", *value)
}
