package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napat/courselens/internal/app/models"
	"github.com/napat/courselens/internal/pkg/apperrors"
)

func int64Ptr(v int64) *int64 { return &v }

func TestGetCourseDetail(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	course := models.Course{ID: 1, Code: "CS101", NameTH: "การเขียนโปรแกรมเบื้องต้น", NameEN: "Intro to Programming", Credits: 3}

	t.Run("assembles reviews with author names and nested blocks", func(t *testing.T) {
		courseStore := newFakeCourseStore(course)
		reviewStore := newFakeReviewStore()
		reviewStore.reviews = []models.Review{
			{ID: 10, CourseID: 1, UserID: 100, Satisfaction: 4, Difficulty: 3, Workload: 5,
				ProsCons: "good lectures", AuthorUsername: "somchai", CreatedAt: base},
			{ID: 11, CourseID: 1, UserID: 101, Satisfaction: 2, Difficulty: 5, Workload: 4,
				Tips: "start early", AuthorUsername: "malee", CreatedAt: base.Add(time.Hour)},
		}

		svc := NewCourseService(courseStore, reviewStore, newFakeUserStore())
		detail, err := svc.GetCourseDetail(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, "CS101", detail.Course.Code)
		require.Len(t, detail.Reviews, 2)

		first := detail.Reviews[0]
		assert.Equal(t, int64(10), first.ID)
		assert.Equal(t, "somchai", first.AuthorUsername)
		assert.Equal(t, 4, first.Ratings.Satisfaction)
		assert.Equal(t, 3, first.Ratings.Difficulty)
		assert.Equal(t, 5, first.Ratings.Workload)
		assert.Equal(t, "good lectures", first.Content.ProsCons)
		assert.Equal(t, "CS101", first.Course.Code)
		assert.Nil(t, first.InstructorReply)
	})

	t.Run("missing author falls back to placeholder", func(t *testing.T) {
		courseStore := newFakeCourseStore(course)
		reviewStore := newFakeReviewStore()
		reviewStore.reviews = []models.Review{
			{ID: 10, CourseID: 1, UserID: 100, Satisfaction: 3, Difficulty: 3, Workload: 3},
		}

		svc := NewCourseService(courseStore, reviewStore, newFakeUserStore())
		detail, err := svc.GetCourseDetail(ctx, 1)
		require.NoError(t, err)
		require.Len(t, detail.Reviews, 1)
		assert.Equal(t, UnknownAuthorName, detail.Reviews[0].AuthorUsername)
	})

	t.Run("surfaces only the latest instructor reply", func(t *testing.T) {
		courseStore := newFakeCourseStore(course)
		reviewStore := newFakeReviewStore()
		reviewStore.reviews = []models.Review{
			{ID: 10, CourseID: 1, UserID: 100, Satisfaction: 4, Difficulty: 3, Workload: 5, AuthorUsername: "somchai"},
		}
		reviewStore.replies = []models.InstructorReply{
			{ID: 1, ReviewID: 10, InstructorID: 200, Content: "first reply", InstructorUsername: "ajarn_a", CreatedAt: base},
			{ID: 2, ReviewID: 10, InstructorID: 200, Content: "second reply", InstructorUsername: "ajarn_a",
				InstructorRole: models.RoleInstructor, CreatedAt: base.Add(2 * time.Hour)},
		}

		svc := NewCourseService(courseStore, reviewStore, newFakeUserStore())
		detail, err := svc.GetCourseDetail(ctx, 1)
		require.NoError(t, err)
		require.Len(t, detail.Reviews, 1)

		reply := detail.Reviews[0].InstructorReply
		require.NotNil(t, reply)
		assert.Equal(t, int64(2), reply.ID)
		assert.Equal(t, "second reply", reply.Content)
		assert.Equal(t, "ajarn_a", reply.InstructorUsername)
		assert.Equal(t, string(models.RoleInstructor), reply.InstructorRole)
	})

	t.Run("missing course short-circuits before review fetch", func(t *testing.T) {
		courseStore := newFakeCourseStore()
		reviewStore := newFakeReviewStore()

		svc := NewCourseService(courseStore, reviewStore, newFakeUserStore())
		_, err := svc.GetCourseDetail(ctx, 99)
		require.ErrorIs(t, err, apperrors.ErrCourseNotFound)
		assert.False(t, reviewStore.reviewsQueried)
	})

	t.Run("course with no reviews returns empty review list", func(t *testing.T) {
		courseStore := newFakeCourseStore(course)
		svc := NewCourseService(courseStore, newFakeReviewStore(), newFakeUserStore())

		detail, err := svc.GetCourseDetail(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, detail.Reviews)
	})

	t.Run("rejects non-positive course ID", func(t *testing.T) {
		svc := NewCourseService(newFakeCourseStore(), newFakeReviewStore(), newFakeUserStore())
		_, err := svc.GetCourseDetail(ctx, 0)
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestGetFacultyRanking(t *testing.T) {
	ctx := context.Background()

	courses := []models.Course{
		{ID: 1, Code: "CS101", NameTH: "การเขียนโปรแกรม", NameEN: "Intro to Programming", Credits: 3},
		{ID: 2, Code: "MA201", NameTH: "แคลคูลัส", NameEN: "Calculus", Credits: 3},
		{ID: 3, Code: "PH100", NameTH: "ฟิสิกส์ทั่วไป", NameEN: "General Physics", Credits: 3},
	}

	t.Run("computes counts, mean difficulty, and same-faculty reviewers", func(t *testing.T) {
		courseStore := newFakeCourseStore(courses...)
		reviewStore := newFakeReviewStore()
		// Course 1: two reviews, difficulties 3 and 5; one author shares the
		// requester's faculty (10), the other has none.
		reviewStore.stats = []models.ReviewStat{
			{CourseID: 1, Difficulty: 3, AuthorFacultyID: int64Ptr(10)},
			{CourseID: 1, Difficulty: 5, AuthorFacultyID: nil},
			{CourseID: 2, Difficulty: 2, AuthorFacultyID: int64Ptr(20)},
		}
		userStore := newFakeUserStore(models.User{ID: 7, FacultyID: int64Ptr(10)})

		svc := NewCourseService(courseStore, reviewStore, userStore)
		ranking, err := svc.GetFacultyRanking(ctx, 7)
		require.NoError(t, err)
		require.Len(t, ranking, 3)

		top := ranking[0]
		assert.Equal(t, int64(1), top.ID)
		assert.Equal(t, 2, top.ReviewCount)
		assert.InDelta(t, 4.0, top.Difficulty, 1e-9)
		assert.Equal(t, 1, top.SameFacultyReviewers)

		second := ranking[1]
		assert.Equal(t, int64(2), second.ID)
		assert.Equal(t, 1, second.ReviewCount)
		assert.InDelta(t, 2.0, second.Difficulty, 1e-9)
		assert.Equal(t, 0, second.SameFacultyReviewers)
	})

	t.Run("courses without reviews rank last with zero stats", func(t *testing.T) {
		courseStore := newFakeCourseStore(courses...)
		reviewStore := newFakeReviewStore()
		reviewStore.stats = []models.ReviewStat{
			{CourseID: 2, Difficulty: 4, AuthorFacultyID: nil},
		}
		userStore := newFakeUserStore(models.User{ID: 7})

		svc := NewCourseService(courseStore, reviewStore, userStore)
		ranking, err := svc.GetFacultyRanking(ctx, 7)
		require.NoError(t, err)
		require.Len(t, ranking, 3)

		assert.Equal(t, int64(2), ranking[0].ID)
		for _, entry := range ranking[1:] {
			assert.Equal(t, 0, entry.ReviewCount)
			assert.Zero(t, entry.Difficulty)
			assert.Equal(t, 0, entry.SameFacultyReviewers)
		}
	})

	t.Run("ties keep course listing order", func(t *testing.T) {
		courseStore := newFakeCourseStore(courses...)
		reviewStore := newFakeReviewStore()
		reviewStore.stats = []models.ReviewStat{
			{CourseID: 1, Difficulty: 3},
			{CourseID: 2, Difficulty: 3},
			{CourseID: 3, Difficulty: 3},
		}
		userStore := newFakeUserStore(models.User{ID: 7})

		svc := NewCourseService(courseStore, reviewStore, userStore)
		ranking, err := svc.GetFacultyRanking(ctx, 7)
		require.NoError(t, err)
		require.Len(t, ranking, 3)

		assert.Equal(t, int64(1), ranking[0].ID)
		assert.Equal(t, int64(2), ranking[1].ID)
		assert.Equal(t, int64(3), ranking[2].ID)
	})

	t.Run("requester without faculty sees zero same-faculty counts", func(t *testing.T) {
		courseStore := newFakeCourseStore(courses[0])
		reviewStore := newFakeReviewStore()
		reviewStore.stats = []models.ReviewStat{
			{CourseID: 1, Difficulty: 4, AuthorFacultyID: int64Ptr(10)},
			{CourseID: 1, Difficulty: 2, AuthorFacultyID: int64Ptr(10)},
		}
		userStore := newFakeUserStore(models.User{ID: 7, FacultyID: nil})

		svc := NewCourseService(courseStore, reviewStore, userStore)
		ranking, err := svc.GetFacultyRanking(ctx, 7)
		require.NoError(t, err)
		require.Len(t, ranking, 1)
		assert.Equal(t, 2, ranking[0].ReviewCount)
		assert.Equal(t, 0, ranking[0].SameFacultyReviewers)
	})

	t.Run("unknown requester fails", func(t *testing.T) {
		svc := NewCourseService(newFakeCourseStore(courses...), newFakeReviewStore(), newFakeUserStore())
		_, err := svc.GetFacultyRanking(ctx, 42)
		require.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestCourseCRUD(t *testing.T) {
	ctx := context.Background()

	t.Run("create validates required fields", func(t *testing.T) {
		svc := NewCourseService(newFakeCourseStore(), newFakeReviewStore(), newFakeUserStore())

		_, err := svc.CreateCourse(ctx, &models.Course{NameEN: "No Code", Credits: 3})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

		_, err = svc.CreateCourse(ctx, &models.Course{Code: "CS101", Credits: 3})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

		_, err = svc.CreateCourse(ctx, &models.Course{Code: "CS101", NameEN: "Intro", Credits: 0})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("create rejects duplicate codes", func(t *testing.T) {
		store := newFakeCourseStore()
		svc := NewCourseService(store, newFakeReviewStore(), newFakeUserStore())

		_, err := svc.CreateCourse(ctx, &models.Course{Code: "CS101", NameEN: "Intro", Credits: 3})
		require.NoError(t, err)

		_, err = svc.CreateCourse(ctx, &models.Course{Code: "CS101", NameEN: "Intro Again", Credits: 3})
		assert.ErrorIs(t, err, apperrors.ErrCourseAlreadyExists)
	})

	t.Run("update requires an existing course", func(t *testing.T) {
		svc := NewCourseService(newFakeCourseStore(), newFakeReviewStore(), newFakeUserStore())
		err := svc.UpdateCourse(ctx, &models.Course{ID: 9, Code: "CS101", NameEN: "Intro", Credits: 3})
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})
}
