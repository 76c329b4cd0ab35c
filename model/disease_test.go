package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiseaseModel_TableName(t *testing.T) {
	assert.Equal(t, "diseases", Disease{}.TableName())
	assert.Equal(t, "user_diseases", UserDisease{}.TableName())
}

func TestDiseaseModel_CreateAndRead(t *testing.T) {
	db := setupTestDB(t, &Disease{})

	disease := Disease{
		ID:                42,
		Name:              "Diabetes",
		Description:       "A metabolic disease",
		ExerciseType:      "Aerobic",
		DetailedGuideline: "Walk 30 minutes a day",
	}
	assert.NoError(t, db.Create(&disease).Error)

	var found Disease
	err := db.First(&found, 42).Error
	assert.NoError(t, err)
	assert.Equal(t, "Diabetes", found.Name)
	assert.Equal(t, "Aerobic", found.ExerciseType)
}

func TestDiseaseModel_ListProjection(t *testing.T) {
	db := setupTestDB(t, &Disease{})

	db.Create(&Disease{ID: 1, Name: "Asthma", Description: "Airway inflammation"})
	db.Create(&Disease{ID: 2, Name: "Hypertension"})

	var rows []DiseaseSummary
	err := db.Model(&Disease{}).Select("disease_id", "name").Order("disease_id").Scan(&rows).Error
	assert.NoError(t, err)
	assert.Equal(t, []DiseaseSummary{{ID: 1, Name: "Asthma"}, {ID: 2, Name: "Hypertension"}}, rows)
}

func TestUserDiseaseModel_AllowsDuplicates(t *testing.T) {
	db := setupTestDB(t, &UserDisease{})

	for i := 0; i < 2; i++ {
		link := UserDisease{UserID: 1, DiseaseID: 42, Name: "Diabetes"}
		assert.NoError(t, db.Create(&link).Error)
		assert.NotZero(t, link.ID)
	}

	var count int64
	db.Model(&UserDisease{}).Where("user_id = ? AND disease_id = ?", 1, 42).Count(&count)
	assert.Equal(t, int64(2), count)
}
