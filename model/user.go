package model

// User represents a registered account
// @Description User information. The stored password is never serialized.
type User struct {
	ID       uint   `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement" example:"1"`
	Name     string `json:"name" gorm:"column:name;type:varchar(100);not null;index" example:"alice"`
	Age      int    `json:"age" gorm:"column:age" example:"30"`
	Gender   string `json:"gender" gorm:"column:gender;type:varchar(16)" example:"F"`
	Phone    string `json:"phone" gorm:"column:phone;type:varchar(32)" example:"0812345678"`
	Email    string `json:"email" gorm:"column:email;type:varchar(191)" example:"alice@example.com"`
	Password string `json:"-" gorm:"column:password;type:varchar(255);not null"`
}

func (User) TableName() string { return "users" }

// UserProfileFields holds the mutable profile columns of a user.
type UserProfileFields struct {
	Name   string
	Age    int
	Gender string
	Phone  string
	Email  string
}
