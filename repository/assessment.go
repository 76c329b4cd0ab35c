package repository

import (
	"context"

	"github.com/ariebrainware/fitbuddy-api/model"
	"gorm.io/gorm"
)

// CreateAssessment stores one body-metric submission as given.
func CreateAssessment(ctx context.Context, db *gorm.DB, a *model.HealthAssessment) error {
	if err := db.WithContext(ctx).Create(a).Error; err != nil {
		return queryError("create assessment", err)
	}
	return nil
}

// ListUserBMI returns one row per assessment joined with the owner's name,
// optionally restricted to a single user.
func ListUserBMI(ctx context.Context, db *gorm.DB, userID *uint) ([]model.UserBMI, error) {
	rows := []model.UserBMI{}
	q := db.WithContext(ctx).
		Table("health_assessment AS h").
		Select("u.user_id, u.name, h.bmi").
		Joins("JOIN users u ON h.user_id = u.user_id")
	if userID != nil {
		q = q.Where("h.user_id = ?", *userID)
	}
	if err := q.Order("h.assessment_id").Scan(&rows).Error; err != nil {
		return nil, queryError("list user bmi", err)
	}
	return rows, nil
}
