package model

// HealthAssessment is one body-metric submission. BMI is stored as sent by
// the client and is not recomputed.
// @Description Body metric assessment
type HealthAssessment struct {
	ID     uint    `json:"assessment_id" gorm:"column:assessment_id;primaryKey;autoIncrement" example:"1"`
	UserID uint    `json:"user_id" gorm:"column:user_id;not null;index" example:"1"`
	Weight float64 `json:"weight" gorm:"column:weight" example:"62.5"`
	Height float64 `json:"height" gorm:"column:height" example:"165"`
	BMI    float64 `json:"bmi" gorm:"column:bmi" example:"22.96"`
}

func (HealthAssessment) TableName() string { return "health_assessment" }

// UserBMI is a row of the user/BMI listing.
type UserBMI struct {
	UserID uint    `json:"user_id" gorm:"column:user_id" example:"1"`
	Name   string  `json:"name" gorm:"column:name" example:"alice"`
	BMI    float64 `json:"bmi" gorm:"column:bmi" example:"22.96"`
}
