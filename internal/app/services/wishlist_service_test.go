package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napat/courselens/internal/app/models"
	"github.com/napat/courselens/internal/pkg/apperrors"
)

func TestWishlist(t *testing.T) {
	ctx := context.Background()
	course := models.Course{ID: 1, Code: "CS101", NameEN: "Intro to Programming", Credits: 3}

	t.Run("add, list, remove round trip", func(t *testing.T) {
		svc := NewWishlistService(&fakeWishlistStore{}, newFakeCourseStore(course))

		id, err := svc.AddToWishlist(ctx, 100, 1)
		require.NoError(t, err)
		assert.Positive(t, id)

		entries, err := svc.GetWishlist(ctx, 100)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		require.NoError(t, svc.RemoveFromWishlist(ctx, 100, 1))

		entries, err = svc.GetWishlist(ctx, 100)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("duplicate bookmarks are rejected", func(t *testing.T) {
		svc := NewWishlistService(&fakeWishlistStore{}, newFakeCourseStore(course))

		_, err := svc.AddToWishlist(ctx, 100, 1)
		require.NoError(t, err)

		_, err = svc.AddToWishlist(ctx, 100, 1)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyWishlisted)
	})

	t.Run("bookmarking requires an existing course", func(t *testing.T) {
		svc := NewWishlistService(&fakeWishlistStore{}, newFakeCourseStore())

		_, err := svc.AddToWishlist(ctx, 100, 99)
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})

	t.Run("removing a missing bookmark is reported", func(t *testing.T) {
		svc := NewWishlistService(&fakeWishlistStore{}, newFakeCourseStore(course))

		err := svc.RemoveFromWishlist(ctx, 100, 1)
		assert.ErrorIs(t, err, apperrors.ErrWishlistNotFound)
	})
}
