package repository

import (
	"context"

	"github.com/ariebrainware/fitbuddy-api/model"
	"gorm.io/gorm"
)

// publicUserColumns excludes the stored password.
var publicUserColumns = []string{"user_id", "name", "age", "gender", "phone", "email"}

// CreateUser inserts user and sets its generated id. Names are not checked
// for duplicates here; a unique constraint in the schema surfaces as ErrQuery.
func CreateUser(ctx context.Context, db *gorm.DB, user *model.User) error {
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return queryError("create user", err)
	}
	return nil
}

// FindCredentialByName returns the id, name and stored password of the first
// user registered under name.
func FindCredentialByName(ctx context.Context, db *gorm.DB, name string) (model.User, error) {
	var user model.User
	err := db.WithContext(ctx).
		Select("user_id", "name", "password").
		Where("name = ?", name).
		Order("user_id").
		Take(&user).Error
	if err != nil {
		return model.User{}, readError("find credential", err)
	}
	return user, nil
}

// UpdateUserPassword replaces the stored password form of a user.
func UpdateUserPassword(ctx context.Context, db *gorm.DB, userID uint, stored string) error {
	res := db.WithContext(ctx).
		Model(&model.User{}).
		Where("user_id = ?", userID).
		Update("password", stored)
	return writeResult("update password", res)
}

// ListUsers returns every user without the stored password.
func ListUsers(ctx context.Context, db *gorm.DB) ([]model.User, error) {
	users := []model.User{}
	if err := db.WithContext(ctx).Select(publicUserColumns).Order("user_id").Find(&users).Error; err != nil {
		return nil, queryError("list users", err)
	}
	return users, nil
}

// GetUser returns one user without the stored password.
func GetUser(ctx context.Context, db *gorm.DB, userID uint) (model.User, error) {
	var user model.User
	err := db.WithContext(ctx).Select(publicUserColumns).Where("user_id = ?", userID).Take(&user).Error
	if err != nil {
		return model.User{}, readError("get user", err)
	}
	return user, nil
}

// UpdateUser overwrites the profile columns of a user. It returns ErrNotFound
// when no row has that id.
func UpdateUser(ctx context.Context, db *gorm.DB, userID uint, fields model.UserProfileFields) error {
	res := db.WithContext(ctx).
		Model(&model.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"name":   fields.Name,
			"age":    fields.Age,
			"gender": fields.Gender,
			"phone":  fields.Phone,
			"email":  fields.Email,
		})
	return writeResult("update user", res)
}

// DeleteUser hard-deletes a user. It returns ErrNotFound when no row has that id.
func DeleteUser(ctx context.Context, db *gorm.DB, userID uint) error {
	res := db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.User{})
	return writeResult("delete user", res)
}
