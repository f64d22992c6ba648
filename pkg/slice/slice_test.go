// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/webtoon/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2.5"}, slice.Map([]float64{1, 2.5}, func(n float64) string {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}))
	assert.Nil(t, slice.Map[int, string](nil, strconv.Itoa))
}
