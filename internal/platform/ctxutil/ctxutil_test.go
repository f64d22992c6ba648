// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/webtoon/internal/platform/ctxutil"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-42")
	assert.Equal(t, "req-42", ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a request logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	// Falls back to the process default
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Same(t, logger, ctxutil.GetLogger(ctx))
}
