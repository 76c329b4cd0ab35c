package model

// Disease is a catalog entry maintained outside this service.
// @Description Disease information with exercise guidance
type Disease struct {
	ID                uint   `json:"disease_id" gorm:"column:disease_id;primaryKey" example:"1"`
	Name              string `json:"name" gorm:"column:name;type:varchar(191);not null" example:"Diabetes"`
	Description       string `json:"description" gorm:"column:description;type:text" example:"A metabolic disease"`
	ExerciseType      string `json:"exercise_type" gorm:"column:exercise_type;type:varchar(255)" example:"Aerobic"`
	DetailedGuideline string `json:"detailed_guideline" gorm:"column:detailed_guideline;type:text" example:"Walk 30 minutes a day"`
}

func (Disease) TableName() string { return "diseases" }

// DiseaseSummary is the catalog listing projection.
type DiseaseSummary struct {
	ID   uint   `json:"disease_id" gorm:"column:disease_id" example:"1"`
	Name string `json:"name" gorm:"column:name" example:"Diabetes"`
}

// UserDisease links a user to a disease. The descriptive fields are copied
// from the catalog when the link is made and are not kept in sync afterwards.
// @Description User to disease association
type UserDisease struct {
	ID                uint   `json:"id" gorm:"column:id;primaryKey;autoIncrement" example:"1"`
	UserID            uint   `json:"user_id" gorm:"column:user_id;not null;index" example:"1"`
	DiseaseID         uint   `json:"disease_id" gorm:"column:disease_id;not null;index" example:"42"`
	Name              string `json:"name" gorm:"column:name;type:varchar(191)" example:"Diabetes"`
	Description       string `json:"description" gorm:"column:description;type:text"`
	ExerciseType      string `json:"exercise_type" gorm:"column:exercise_type;type:varchar(255)"`
	DetailedGuideline string `json:"detailed_guideline" gorm:"column:detailed_guideline;type:text"`
}

func (UserDisease) TableName() string { return "user_diseases" }
