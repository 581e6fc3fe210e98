package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataset(id string, created time.Time) *Dataset {
	return &Dataset{ID: id, Name: id + ".zip", CreatedAt: created}
}

func TestPutGetDelete(t *testing.T) {
	s := New(4)
	now := time.Date(2022, 11, 5, 10, 0, 0, 0, time.UTC)

	s.Put(dataset("a", now))
	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a.zip", got.Name)

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Delete("a"))
	assert.ErrorIs(t, s.Delete("a"), ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	s := New(4)
	base := time.Date(2022, 11, 5, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		s.Put(dataset(fmt.Sprintf("d%d", i), base.Add(time.Duration(i)*time.Minute)))
	}

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "d2", list[0].ID)
	assert.Equal(t, "d0", list[2].ID)
}

func TestCapEvictsOldest(t *testing.T) {
	s := New(2)
	base := time.Date(2022, 11, 5, 10, 0, 0, 0, time.UTC)
	s.Put(dataset("old", base))
	s.Put(dataset("mid", base.Add(time.Minute)))
	s.Put(dataset("new", base.Add(2*time.Minute)))

	assert.Equal(t, 2, s.Len())
	_, err := s.Get("old")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get("new")
	assert.NoError(t, err)
}
