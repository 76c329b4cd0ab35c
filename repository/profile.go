package repository

import (
	"context"
	"strings"

	"github.com/ariebrainware/fitbuddy-api/model"
	"gorm.io/gorm"
)

// profileQuery joins a user with their most recent assessment (highest
// assessment_id) and every disease association. One row per association,
// or a single row with NULL association columns when there are none.
const profileQuery = `
SELECT
	u.user_id, u.name, u.age, u.gender, u.email,
	ha.weight, ha.height, ha.bmi,
	d.name AS disease_name,
	ud.exercise_type,
	ud.detailed_guideline
FROM users u
LEFT JOIN health_assessment ha
	ON ha.assessment_id = (SELECT MAX(h2.assessment_id) FROM health_assessment h2 WHERE h2.user_id = u.user_id)
LEFT JOIN user_diseases ud ON ud.user_id = u.user_id
LEFT JOIN diseases d ON d.disease_id = ud.disease_id
WHERE u.user_id = ?
ORDER BY ud.id`

type profileRow struct {
	UserID            uint
	Name              string
	Age               int
	Gender            string
	Email             string
	Weight            *float64
	Height            *float64
	BMI               *float64 `gorm:"column:bmi"`
	DiseaseName       *string
	ExerciseType      *string
	DetailedGuideline *string
}

// GetProfile returns the aggregated profile of a user, or ErrNotFound.
func GetProfile(ctx context.Context, db *gorm.DB, userID uint) (model.Profile, error) {
	var rows []profileRow
	if err := db.WithContext(ctx).Raw(profileQuery, userID).Scan(&rows).Error; err != nil {
		return model.Profile{}, queryError("get profile", err)
	}
	if len(rows) == 0 {
		return model.Profile{}, ErrNotFound
	}
	return foldProfile(rows), nil
}

// foldProfile collapses the joined rows of one user into a single view. Each
// multi-valued column keeps distinct non-empty values in first-seen order,
// joined with ", ".
func foldProfile(rows []profileRow) model.Profile {
	first := rows[0]
	p := model.Profile{
		UserID: first.UserID,
		Name:   first.Name,
		Age:    first.Age,
		Gender: first.Gender,
		Email:  first.Email,
		Weight: first.Weight,
		Height: first.Height,
		BMI:    first.BMI,
	}

	var diseases, exercises, guidelines distinctList
	for _, r := range rows {
		diseases.add(r.DiseaseName)
		exercises.add(r.ExerciseType)
		guidelines.add(r.DetailedGuideline)
	}
	p.Diseases = diseases.String()
	p.ExerciseTypes = exercises.String()
	p.DetailedGuidelines = guidelines.String()
	return p
}

type distinctList struct {
	seen   map[string]struct{}
	values []string
}

func (l *distinctList) add(v *string) {
	if v == nil || *v == "" {
		return
	}
	if l.seen == nil {
		l.seen = make(map[string]struct{})
	}
	if _, ok := l.seen[*v]; ok {
		return
	}
	l.seen[*v] = struct{}{}
	l.values = append(l.values, *v)
}

func (l *distinctList) String() string {
	return strings.Join(l.values, ", ")
}
