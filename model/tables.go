package model

// Tables lists every model, in creation order, for schema setup in tests
// and local development databases.
var Tables = []interface{}{
	&User{},
	&HealthAssessment{},
	&Disease{},
	&UserDisease{},
	&SecurityLog{},
}
