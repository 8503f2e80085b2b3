// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package notes

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-app/inkwell/internal/platform/apperr"
	"github.com/inkwell-app/inkwell/internal/platform/dberr"
	"github.com/inkwell-app/inkwell/pkg/pointer"
)

// fakeRepository is an in-memory stand-in for the Postgres store.
type fakeRepository struct {
	notes    map[uuid.UUID]*Note
	getCalls int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{notes: make(map[uuid.UUID]*Note)}
}

func (f *fakeRepository) live() []*Note {
	var collection []*Note
	for _, note := range f.notes {
		if note.DeletedAt == nil {
			clone := *note
			collection = append(collection, &clone)
		}
	}
	return collection
}

func (f *fakeRepository) List(_ context.Context, filter Filter, limit, offset int) ([]*Note, int, error) {
	var matched []*Note
	for _, note := range f.live() {
		if filter.Title != "" && !strings.Contains(note.Title, filter.Title) {
			continue
		}
		if filter.Content != "" && !strings.Contains(note.Content, filter.Content) {
			continue
		}
		if filter.Published != nil && note.Published != *filter.Published {
			continue
		}
		matched = append(matched, note)
	}

	sort.Slice(matched, func(i, j int) bool {
		less := matched[i].Title < matched[j].Title
		if filter.SortBy != SortByTitle {
			less = matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		if filter.SortOrder == SortOrderDesc {
			return !less
		}
		return less
	})

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (f *fakeRepository) Get(_ context.Context, id uuid.UUID) (*Note, error) {
	f.getCalls++
	note, ok := f.notes[id]
	if !ok || note.DeletedAt != nil {
		return nil, dberr.ErrNotFound
	}
	clone := *note
	return &clone, nil
}

func (f *fakeRepository) Create(_ context.Context, note *Note) error {
	for _, existing := range f.live() {
		if existing.Title == note.Title {
			return apperr.Conflict("Note title already exists")
		}
	}
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt
	clone := *note
	f.notes[note.ID] = &clone
	return nil
}

func (f *fakeRepository) Update(_ context.Context, note *Note) error {
	stored, ok := f.notes[note.ID]
	if !ok || stored.DeletedAt != nil {
		return dberr.ErrNotFound
	}
	note.UpdatedAt = time.Now()
	clone := *note
	f.notes[note.ID] = &clone
	return nil
}

func (f *fakeRepository) SoftDelete(_ context.Context, id uuid.UUID) error {
	note, ok := f.notes[id]
	if !ok || note.DeletedAt != nil {
		return dberr.ErrNotFound
	}
	now := time.Now()
	note.DeletedAt = &now
	return nil
}

// fakeCache records hits so tests can assert read-through behavior.
type fakeCache struct {
	entries map[uuid.UUID]*Note
	sets    int
	drops   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[uuid.UUID]*Note)}
}

func (f *fakeCache) Get(_ context.Context, id uuid.UUID) (*Note, error) {
	note, ok := f.entries[id]
	if !ok {
		return nil, nil
	}
	clone := *note
	return &clone, nil
}

func (f *fakeCache) Set(_ context.Context, note *Note) error {
	f.sets++
	clone := *note
	f.entries[note.ID] = &clone
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, id uuid.UUID) error {
	f.drops++
	delete(f.entries, id)
	return nil
}

func newTestService(repo Repository, cache Cache) *Service {
	return NewService(repo, cache, slog.Default())
}

var testAuthor = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func TestService_Create_DuplicateTitle(t *testing.T) {
	service := newTestService(newFakeRepository(), newFakeCache())

	_, err := service.Create(context.Background(), testAuthor, CreateInput{Title: "Groceries", Content: "eggs"})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), testAuthor, CreateInput{Title: "Groceries", Content: "milk"})
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "CONFLICT"))
}

func TestService_Get_ReadThrough(t *testing.T) {
	repo := newFakeRepository()
	cache := newFakeCache()
	service := newTestService(repo, cache)

	note, err := service.Create(context.Background(), testAuthor, CreateInput{Title: "Groceries", Content: "eggs"})
	require.NoError(t, err)

	// First read misses the cache and loads from storage.
	first, err := service.Get(context.Background(), note.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getCalls)
	assert.Equal(t, 1, cache.sets)

	// Second read is served from the cache.
	second, err := service.Get(context.Background(), note.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getCalls)
	assert.Equal(t, first.Title, second.Title)
}

func TestService_Update_MergesAndInvalidates(t *testing.T) {
	repo := newFakeRepository()
	cache := newFakeCache()
	service := newTestService(repo, cache)

	note, err := service.Create(context.Background(), testAuthor, CreateInput{
		Title:    "Groceries",
		Content:  "eggs",
		Category: pointer.To("home"),
	})
	require.NoError(t, err)

	// Warm the cache, then mutate.
	_, err = service.Get(context.Background(), note.ID)
	require.NoError(t, err)

	editor := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	updated, err := service.Update(context.Background(), note.ID, editor, UpdateInput{
		Content:   pointer.To("eggs and milk"),
		Published: pointer.To(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "eggs and milk", updated.Content)
	assert.True(t, updated.Published)
	require.NotNil(t, updated.UpdatedBy)
	assert.Equal(t, editor, *updated.UpdatedBy)

	// Untouched fields survive the partial update.
	assert.Equal(t, "Groceries", updated.Title)
	require.NotNil(t, updated.Category)
	assert.Equal(t, "home", *updated.Category)

	// The stale cache entry is gone.
	assert.Equal(t, 1, cache.drops)
	cached, err := cache.Get(context.Background(), note.ID)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestService_Delete_HidesNote(t *testing.T) {
	repo := newFakeRepository()
	cache := newFakeCache()
	service := newTestService(repo, cache)

	note, err := service.Create(context.Background(), testAuthor, CreateInput{Title: "Groceries", Content: "eggs"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), note.ID, testAuthor))

	_, err = service.Get(context.Background(), note.ID)
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "NOT_FOUND"))

	// The freed title can be reused by a new note.
	_, err = service.Create(context.Background(), testAuthor, CreateInput{Title: "Groceries", Content: "fresh start"})
	require.NoError(t, err)
}

func TestService_List_FiltersAndPaginates(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, newFakeCache())

	for _, title := range []string{"alpha journal", "beta journal", "shopping"} {
		_, err := service.Create(context.Background(), testAuthor, CreateInput{Title: title, Content: "body"})
		require.NoError(t, err)
	}

	collection, total, err := service.List(context.Background(), Filter{
		Title:     "journal",
		SortBy:    SortByTitle,
		SortOrder: SortOrderAsc,
	}, 10, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, total)
	require.Len(t, collection, 2)
	assert.Equal(t, "alpha journal", collection[0].Title)

	// An unrecognized sort column falls back to the default instead of
	// reaching the query.
	_, total, err = service.List(context.Background(), Filter{SortBy: "; DROP TABLE notes"}, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}
