package repository

import (
	"context"
	"errors"

	"github.com/ariebrainware/fitbuddy-api/model"
	"gorm.io/gorm"
)

// ListDiseases returns the id and name of every catalog entry.
func ListDiseases(ctx context.Context, db *gorm.DB) ([]model.DiseaseSummary, error) {
	list := []model.DiseaseSummary{}
	err := db.WithContext(ctx).
		Model(&model.Disease{}).
		Select("disease_id", "name").
		Order("disease_id").
		Scan(&list).Error
	if err != nil {
		return nil, queryError("list diseases", err)
	}
	return list, nil
}

// GetDisease returns a catalog entry by id.
func GetDisease(ctx context.Context, db *gorm.DB, diseaseID uint) (model.Disease, error) {
	var d model.Disease
	if err := db.WithContext(ctx).Where("disease_id = ?", diseaseID).Take(&d).Error; err != nil {
		return model.Disease{}, readError("get disease", err)
	}
	return d, nil
}

// AssociateDisease links a user to a disease by copying the catalog entry as
// it reads now into a new user_diseases row. The read and the insert are
// separate statements with no transaction; calling it twice with the same
// pair creates two rows.
func AssociateDisease(ctx context.Context, db *gorm.DB, userID, diseaseID uint) (model.UserDisease, error) {
	d, err := GetDisease(ctx, db, diseaseID)
	if errors.Is(err, ErrNotFound) {
		return model.UserDisease{}, ErrDiseaseNotFound
	}
	if err != nil {
		return model.UserDisease{}, err
	}

	link := model.UserDisease{
		UserID:            userID,
		DiseaseID:         d.ID,
		Name:              d.Name,
		Description:       d.Description,
		ExerciseType:      d.ExerciseType,
		DetailedGuideline: d.DetailedGuideline,
	}
	if err := db.WithContext(ctx).Create(&link).Error; err != nil {
		return model.UserDisease{}, queryError("create user disease", err)
	}
	return link, nil
}
