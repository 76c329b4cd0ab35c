package endpoint

import (
	"github.com/ariebrainware/fitbuddy-api/model"
	"github.com/ariebrainware/fitbuddy-api/repository"
	"github.com/ariebrainware/fitbuddy-api/util"
	"github.com/gin-gonic/gin"
)

type UpdateUserRequest struct {
	Name   string `json:"name" binding:"required" example:"alice"`
	Age    *int   `json:"age" binding:"required" example:"31"`
	Gender string `json:"gender" binding:"required" example:"F"`
	Phone  string `json:"phone" binding:"required" example:"0812345678"`
	Email  string `json:"email" binding:"required" example:"alice@example.com"`
}

func (r UpdateUserRequest) fields() model.UserProfileFields {
	return model.UserProfileFields{
		Name:   util.NormalizeName(r.Name),
		Age:    *r.Age,
		Gender: r.Gender,
		Phone:  r.Phone,
		Email:  r.Email,
	}
}

// ListUsers godoc
// @Summary      List users
// @Description  Get every user. Stored passwords are never returned.
// @Tags         User
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]model.User} "Users retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /users [get]
func ListUsers(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	users, err := repository.ListUsers(c.Request.Context(), db)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve users", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Users retrieved", Data: users})
}

// GetUserInfo godoc
// @Summary      Get user
// @Description  Get one user by id
// @Tags         User
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} util.APIResponse{data=model.User} "User retrieved"
// @Failure      400 {object} util.APIResponse "Invalid user ID"
// @Failure      404 {object} util.APIResponse "User not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /users/{id} [get]
func GetUserInfo(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "user ID")
	if !ok {
		return
	}
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	user, err := repository.GetUser(c.Request.Context(), db, id)
	if err != nil {
		respondRepoError(c, err, "User not found", "Failed to retrieve user")
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "User retrieved", Data: user})
}

// CreateUser godoc
// @Summary      Create user
// @Description  Administrative user creation. The password is hashed like Register.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "User data"
// @Success      201 {object} util.APIResponse{data=UserIDResponse} "User created"
// @Failure      400 {object} util.APIResponse "Missing field"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /users [post]
func CreateUser(c *gin.Context) {
	var req RegisterRequest
	if !bindJSONOrRespond(c, &req, "All fields are required") {
		return
	}
	name, ok := normalizedNameOrRespond(c, req.Name)
	if !ok {
		return
	}
	req.Name = name
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	user, err := newUserFromRequest(req)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create user", Err: err})
		return
	}
	if err := repository.CreateUser(c.Request.Context(), db, &user); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create user", Err: err})
		return
	}

	util.CallSuccessCreated(c, util.APISuccessParams{
		Msg:  "User created",
		Data: UserIDResponse{UserID: user.ID},
	})
}

// UpdateUser godoc
// @Summary      Update user
// @Description  Replace the profile fields of a user
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        userId path int true "User ID"
// @Param        request body UpdateUserRequest true "Profile fields"
// @Success      200 {object} util.APIResponse "User updated"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      404 {object} util.APIResponse "User not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/users/{userId} [put]
// @Router       /users/{userId} [put]
func UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "userId", "user ID")
	if !ok {
		return
	}
	var req UpdateUserRequest
	if !bindJSONOrRespond(c, &req, "All fields are required") {
		return
	}
	if req.Name, ok = normalizedNameOrRespond(c, req.Name); !ok {
		return
	}
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	if err := repository.UpdateUser(c.Request.Context(), db, id, req.fields()); err != nil {
		respondRepoError(c, err, "User not found", "Failed to update user")
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "User updated successfully", Data: UserIDResponse{UserID: id}})
}

// DeleteUser godoc
// @Summary      Delete user
// @Description  Permanently delete a user
// @Tags         User
// @Produce      json
// @Param        userId path int true "User ID"
// @Success      200 {object} util.APIResponse "User deleted"
// @Failure      400 {object} util.APIResponse "Invalid user ID"
// @Failure      404 {object} util.APIResponse "User not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /users/{userId} [delete]
func DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "userId", "user ID")
	if !ok {
		return
	}
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	if err := repository.DeleteUser(c.Request.Context(), db, id); err != nil {
		respondRepoError(c, err, "User not found", "Failed to delete user")
		return
	}

	p := clientParams(c)
	p.UserID = id
	util.LogUserDeleted(p)

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "User deleted successfully", Data: UserIDResponse{UserID: id}})
}
