// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/taibuivan/webtoon/internal/platform/constants"
	"github.com/taibuivan/webtoon/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency checkers for the /ready endpoint.
// A nil checker is skipped.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase func(ctx context.Context) error

	// CheckCache pings the Redis client.
	CheckCache func(ctx context.Context) error
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// root handles GET /.
func root(writer http.ResponseWriter, _ *http.Request) {
	respond.JSON(writer, http.StatusOK, map[string]string{constants.FieldMessage: constants.WelcomeMessage})
}

// liveness handles GET /health. It answers while the process is up.
func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.JSON(writer, http.StatusOK, map[string]string{constants.FieldStatus: "healthy"})
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// readiness handles GET /ready.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	results := make([]checkResult, 0, 2)
	isSystemReady := true

	checkDependency := func(name string, check func(ctx context.Context) error) {
		if check == nil {
			return
		}

		result := checkResult{Name: name, IsOK: true}
		if err := check(request.Context()); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			isSystemReady = false
			handler.logger.ErrorContext(request.Context(), "readiness_check_failed",
				slog.String("dependency", name),
				slog.Any("error", err),
			)
		}
		results = append(results, result)
	}

	checkDependency("postgres", handler.dependencies.CheckDatabase)
	checkDependency("redis", handler.dependencies.CheckCache)

	responseStatus := "ready"
	httpStatus := http.StatusOK
	if !isSystemReady {
		responseStatus = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	respond.JSON(writer, httpStatus, map[string]any{
		constants.FieldStatus: responseStatus,
		constants.FieldChecks: results,
	})
}
