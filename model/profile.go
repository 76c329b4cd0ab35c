package model

// Profile is the denormalized read view of a user with their selected
// assessment and disease associations. Multi-valued disease fields are
// joined with ", ".
// @Description Aggregated user profile
type Profile struct {
	UserID             uint     `json:"user_id" example:"1"`
	Name               string   `json:"name" example:"alice"`
	Age                int      `json:"age" example:"30"`
	Gender             string   `json:"gender" example:"F"`
	Email              string   `json:"email" example:"alice@example.com"`
	Weight             *float64 `json:"weight" example:"62.5"`
	Height             *float64 `json:"height" example:"165"`
	BMI                *float64 `json:"bmi" example:"22.96"`
	Diseases           string   `json:"diseases" example:"Diabetes, Hypertension"`
	ExerciseTypes      string   `json:"exercise_types" example:"Aerobic, Stretching"`
	DetailedGuidelines string   `json:"detailed_guidelines"`
}
