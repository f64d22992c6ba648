// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/webtoon/internal/platform/constants"
)

// # Read-Through Cache

/*
CachedRepository decorates a [Repository] with a Redis read-through cache for
single-comic lookups.

Keys:
  - webtoon:comic:id:{id} holds the JSON-encoded comic.
  - webtoon:comic:slug:{slug} holds the id the slug resolved to.

A slug entry is only trusted when the comic it points at still carries that
slug, so renaming a comic never serves it under the old slug. Redis failures
are logged and the call falls through to the wrapped repository.
*/
type CachedRepository struct {
	Repository
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRepository wraps inner with a cache whose entries live for ttl.
func NewCachedRepository(inner Repository, client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{
		Repository: inner,
		client:     client,
		ttl:        ttl,
		logger:     logger,
	}
}

// FindByID serves the comic from cache, loading and storing it on a miss.
func (repository *CachedRepository) FindByID(context context.Context, id string) (*Comic, error) {
	if comic := repository.load(context, id); comic != nil {
		return comic, nil
	}

	comic, err := repository.Repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	repository.store(context, comic)
	return comic, nil
}

// FindBySlug resolves the slug through the cached id pointer when it is still valid.
func (repository *CachedRepository) FindBySlug(context context.Context, slug string) (*Comic, error) {
	id, err := repository.client.Get(context, constants.RedisPrefixComicBySlug+slug).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		repository.warn(context, "comic_cache_read_failed", err)
	}

	if id != "" {
		if comic := repository.load(context, id); comic != nil && comic.Slug == slug {
			return comic, nil
		}
	}

	comic, err := repository.Repository.FindBySlug(context, slug)
	if err != nil {
		return nil, err
	}

	repository.store(context, comic)
	return comic, nil
}

// Update writes through and drops the cached entry.
func (repository *CachedRepository) Update(context context.Context, comic *Comic) error {
	if err := repository.Repository.Update(context, comic); err != nil {
		return err
	}
	repository.Invalidate(context, comic.ID)
	return nil
}

// Delete removes the comic and drops the cached entry.
func (repository *CachedRepository) Delete(context context.Context, id string) error {
	if err := repository.Repository.Delete(context, id); err != nil {
		return err
	}
	repository.Invalidate(context, id)
	return nil
}

// Invalidate drops the cached copy of a comic, for example after its chapter count changed.
func (repository *CachedRepository) Invalidate(context context.Context, id string) {
	if err := repository.client.Del(context, constants.RedisPrefixComicByID+id).Err(); err != nil {
		repository.warn(context, "comic_cache_invalidate_failed", err)
	}
}

// # Internal Helpers

func (repository *CachedRepository) load(context context.Context, id string) *Comic {
	payload, err := repository.client.Get(context, constants.RedisPrefixComicByID+id).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			repository.warn(context, "comic_cache_read_failed", err)
		}
		return nil
	}

	comic := &Comic{}
	if err := json.Unmarshal(payload, comic); err != nil {
		repository.warn(context, "comic_cache_decode_failed", err)
		return nil
	}

	return comic
}

func (repository *CachedRepository) store(context context.Context, comic *Comic) {
	payload, err := json.Marshal(comic)
	if err != nil {
		repository.warn(context, "comic_cache_encode_failed", err)
		return
	}

	_, err = repository.client.TxPipelined(context, func(pipe redis.Pipeliner) error {
		pipe.Set(context, constants.RedisPrefixComicByID+comic.ID, payload, repository.ttl)
		pipe.Set(context, constants.RedisPrefixComicBySlug+comic.Slug, comic.ID, repository.ttl)
		return nil
	})
	if err != nil {
		repository.warn(context, "comic_cache_write_failed", err)
	}
}

func (repository *CachedRepository) warn(context context.Context, event string, err error) {
	repository.logger.WarnContext(context, event, slog.String("error", err.Error()))
}
