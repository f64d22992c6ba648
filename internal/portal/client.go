// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/taibuivan/webtoon/internal/core/chapter"
	"github.com/taibuivan/webtoon/internal/core/comic"
	"github.com/taibuivan/webtoon/internal/core/stats"
	"github.com/taibuivan/webtoon/internal/platform/apperr"
	"github.com/taibuivan/webtoon/internal/platform/respond"
)

// # Data Contract

// Source supplies the data every view renders.
type Source interface {
	Summary(ctx context.Context) (*stats.Summary, error)
	ListComics(ctx context.Context, query ComicQuery) ([]comic.Comic, error)
	CreateComic(ctx context.Context, input NewComic) (*comic.Comic, error)
	ListChapters(ctx context.Context, comicIdentifier string) ([]chapter.Chapter, error)
}

// ComicQuery mirrors the list filters of GET /api/comics.
type ComicQuery struct {
	Search string
	Status string
	Sort   string
}

func (query ComicQuery) values() url.Values {
	values := url.Values{}
	if query.Search != "" {
		values.Set("search", query.Search)
	}
	if query.Status != "" {
		values.Set("status", query.Status)
	}
	if query.Sort != "" {
		values.Set("sort", query.Sort)
	}
	return values
}

// NewComic is the body of POST /api/comics.
type NewComic struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	CoverURL    string `json:"cover_url,omitempty"`
	Status      string `json:"status,omitempty"`
}

// # API Errors

// APIError is a non-2xx answer decoded from the error envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    []apperr.FieldError
}

func (err *APIError) Error() string {
	if len(err.Details) == 0 {
		return fmt.Sprintf("%s (%d %s)", err.Message, err.StatusCode, err.Code)
	}

	fields := make([]string, 0, len(err.Details))
	for _, detail := range err.Details {
		fields = append(fields, detail.Field+": "+detail.Message)
	}
	return fmt.Sprintf("%s (%d %s): %s", err.Message, err.StatusCode, err.Code, strings.Join(fields, "; "))
}

// # HTTP Client

// Client talks to the live API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a [Client] for cfg.APIURL.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// Summary fetches GET /stats.
func (client *Client) Summary(ctx context.Context) (*stats.Summary, error) {
	var summary stats.Summary
	if err := client.do(ctx, http.MethodGet, "/stats", nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ListComics fetches GET /comics with the given filters.
func (client *Client) ListComics(ctx context.Context, query ComicQuery) ([]comic.Comic, error) {
	var comics []comic.Comic
	if err := client.do(ctx, http.MethodGet, "/comics", query.values(), nil, &comics); err != nil {
		return nil, err
	}
	return comics, nil
}

// CreateComic posts a new comic.
func (client *Client) CreateComic(ctx context.Context, input NewComic) (*comic.Comic, error) {
	var created comic.Comic
	if err := client.do(ctx, http.MethodPost, "/comics", nil, input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListChapters fetches the chapters of a comic addressed by id or slug.
func (client *Client) ListChapters(ctx context.Context, comicIdentifier string) ([]chapter.Chapter, error) {
	var chapters []chapter.Chapter
	path := "/comics/" + url.PathEscape(comicIdentifier) + "/chapters"
	if err := client.do(ctx, http.MethodGet, path, nil, nil, &chapters); err != nil {
		return nil, err
	}
	return chapters, nil
}

// do sends one request and decodes the data envelope into out.
func (client *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := client.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("portal: encode %s %s: %w", method, path, err)
		}
		payload = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return fmt.Errorf("portal: build %s %s: %w", method, path, err)
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := client.http.Do(request)
	if err != nil {
		return fmt.Errorf("portal: %s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		return decodeError(response)
	}

	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("portal: decode %s %s: %w", method, path, err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("portal: decode %s %s data: %w", method, path, err)
	}
	return nil
}

func decodeError(response *http.Response) error {
	apiError := &APIError{StatusCode: response.StatusCode, Message: http.StatusText(response.StatusCode)}

	var envelope respond.ErrorEnvelope
	if err := json.NewDecoder(response.Body).Decode(&envelope); err == nil {
		if envelope.Error != "" {
			apiError.Message = envelope.Error
		}
		apiError.Code = envelope.Code
		apiError.Details = envelope.Details
	}
	return apiError
}
