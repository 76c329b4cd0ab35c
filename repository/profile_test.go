package repository

import (
	"testing"

	"github.com/ariebrainware/fitbuddy-api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile_NoAssessmentNoDiseases(t *testing.T) {
	db := setupTestDB(t)
	u := seedUser(t, db, "alice")

	p, err := GetProfile(ctx, db, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, p.UserID)
	assert.Equal(t, "alice", p.Name)
	assert.Nil(t, p.Weight)
	assert.Nil(t, p.BMI)
	assert.Equal(t, "", p.Diseases)
	assert.Equal(t, "", p.ExerciseTypes)
	assert.Equal(t, "", p.DetailedGuidelines)
}

func TestGetProfile_UnknownUser(t *testing.T) {
	db := setupTestDB(t)
	_, err := GetProfile(ctx, db, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetProfile_AggregatesDiseases(t *testing.T) {
	db := setupTestDB(t)
	u := seedUser(t, db, "alice")
	seedDisease(t, db, model.Disease{ID: 1, Name: "Asthma", ExerciseType: "Swimming", DetailedGuideline: "Warm up"})
	seedDisease(t, db, model.Disease{ID: 2, Name: "Diabetes", ExerciseType: "Aerobic", DetailedGuideline: "Walk daily"})
	require.NoError(t, CreateAssessment(ctx, db, &model.HealthAssessment{UserID: u.ID, Weight: 60, Height: 165, BMI: 22.04}))

	for _, id := range []uint{1, 2, 1} {
		_, err := AssociateDisease(ctx, db, u.ID, id)
		require.NoError(t, err)
	}

	p, err := GetProfile(ctx, db, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asthma, Diabetes", p.Diseases)
	assert.Equal(t, "Swimming, Aerobic", p.ExerciseTypes)
	assert.Equal(t, "Warm up, Walk daily", p.DetailedGuidelines)
	require.NotNil(t, p.BMI)
	assert.Equal(t, 22.04, *p.BMI)
}

func TestGetProfile_UsesLatestAssessment(t *testing.T) {
	db := setupTestDB(t)
	u := seedUser(t, db, "alice")
	other := seedUser(t, db, "bob")

	require.NoError(t, CreateAssessment(ctx, db, &model.HealthAssessment{UserID: u.ID, Weight: 70, Height: 165, BMI: 25.71}))
	require.NoError(t, CreateAssessment(ctx, db, &model.HealthAssessment{UserID: u.ID, Weight: 65, Height: 165, BMI: 23.88}))
	require.NoError(t, CreateAssessment(ctx, db, &model.HealthAssessment{UserID: other.ID, Weight: 80, Height: 180, BMI: 24.69}))

	p, err := GetProfile(ctx, db, u.ID)
	require.NoError(t, err)
	require.NotNil(t, p.Weight)
	assert.Equal(t, 65.0, *p.Weight)
	assert.Equal(t, 23.88, *p.BMI)
}

func TestFoldProfile_SkipsNullAndEmpty(t *testing.T) {
	name := "Asthma"
	empty := ""
	rows := []profileRow{
		{UserID: 1, Name: "alice", DiseaseName: &name, ExerciseType: &empty},
		{UserID: 1, Name: "alice", DiseaseName: nil, ExerciseType: nil},
	}
	p := foldProfile(rows)
	assert.Equal(t, "Asthma", p.Diseases)
	assert.Equal(t, "", p.ExerciseTypes)
}
