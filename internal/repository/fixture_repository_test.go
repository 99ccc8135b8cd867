package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campushub/internal/models"
)

func TestFixtureRepositoryReturnsFreshCopies(t *testing.T) {
	repo := NewFixtureRepository()
	ctx := context.Background()

	first, err := repo.Assignments(ctx)
	require.NoError(t, err)
	first[0].Title = "mutated"

	second, err := repo.Assignments(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Data Structures - Binary Trees Implementation", second[0].Title)
}

func TestFixtureRepositoryPeopleByKind(t *testing.T) {
	repo := NewFixtureRepository()
	ctx := context.Background()

	counts := map[models.PersonKind]int{}
	for _, kind := range models.PersonKinds {
		people, err := repo.People(ctx, kind)
		require.NoError(t, err)
		for _, p := range people {
			assert.Equal(t, kind, p.Kind)
		}
		counts[kind] = len(people)
	}
	assert.Equal(t, map[models.PersonKind]int{models.PersonStudent: 3, models.PersonTeacher: 2, models.PersonAlumni: 3}, counts)

	unknown, err := repo.People(ctx, models.PersonKind("staff"))
	require.NoError(t, err)
	assert.Empty(t, unknown)
}

func TestFixtureRepositoryGradedAssignment(t *testing.T) {
	list, err := NewFixtureRepository().Assignments(context.Background())
	require.NoError(t, err)

	var graded []models.Assignment
	for _, a := range list {
		if a.Status == models.StatusGraded {
			graded = append(graded, a)
		}
	}
	require.Len(t, graded, 1)
	assert.Equal(t, 4, graded[0].ID)
	require.NotNil(t, graded[0].Grade)
	assert.Equal(t, 72, *graded[0].Grade)
	assert.Equal(t, 80, graded[0].Points)
}
