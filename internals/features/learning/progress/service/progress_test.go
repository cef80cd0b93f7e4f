package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func ids(n int) []uuid.UUID {
	out := make([]uuid.UUID, n)
	for i := range out {
		out[i] = uuid.New()
	}
	return out
}

func set(list ...uuid.UUID) map[uuid.UUID]struct{} {
	out := map[uuid.UUID]struct{}{}
	for _, id := range list {
		out[id] = struct{}{}
	}
	return out
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 0))
	assert.Equal(t, 0, Percent(3, 0))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 100, Percent(4, 4))
}

func TestCourseProgress(t *testing.T) {
	lessons := ids(3)
	other := uuid.New()

	t.Run("course without lessons is zero", func(t *testing.T) {
		p := CourseProgress(nil, set(other))
		assert.Equal(t, 0, p.TotalLessons)
		assert.Equal(t, 0, p.Progress)
	})

	t.Run("lessons of other courses are ignored", func(t *testing.T) {
		p := CourseProgress(lessons, set(lessons[0], other))
		assert.Equal(t, 3, p.TotalLessons)
		assert.Equal(t, 1, p.CompletedLessons)
		assert.Equal(t, 33, p.Progress)
	})

	t.Run("100 only when every lesson is done", func(t *testing.T) {
		assert.Equal(t, 67, CourseProgress(lessons, set(lessons[0], lessons[1])).Progress)
		assert.Equal(t, 100, CourseProgress(lessons, set(lessons...)).Progress)
	})
}

func TestAllUsersProgress(t *testing.T) {
	lessons := ids(2)
	ana := UserRef{ID: uuid.New(), Name: "Ana"}
	bia := UserRef{ID: uuid.New(), Name: "Bia"}
	caio := UserRef{ID: uuid.New(), Name: "Caio"}

	completed := map[uuid.UUID]map[uuid.UUID]struct{}{
		ana.ID:  set(lessons...),
		caio.ID: set(lessons[1], uuid.New()),
	}

	got := AllUsersProgress(lessons, []UserRef{caio, bia, ana}, completed)
	if assert.Len(t, got, 2) {
		assert.Equal(t, "Caio", got[0].UserName)
		assert.Equal(t, 50, got[0].Progress)
		assert.Equal(t, 1, got[0].CompletedLessons)
		assert.Equal(t, "Ana", got[1].UserName)
		assert.Equal(t, 100, got[1].Progress)
	}

	assert.Empty(t, AllUsersProgress(nil, []UserRef{ana}, completed))
	assert.NotNil(t, AllUsersProgress(lessons, nil, completed))
}
