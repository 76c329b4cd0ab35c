package endpoint

import (
	"context"
	"errors"
	"sync"

	"github.com/ariebrainware/fitbuddy-api/model"
	"github.com/ariebrainware/fitbuddy-api/repository"
	"github.com/ariebrainware/fitbuddy-api/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is the single error clients see for an unknown name
// or a wrong password.
var ErrInvalidCredentials = errors.New("invalid name or password")

const invalidCredentialsMsg = "Invalid name or password"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"alice"`
	Age      *int   `json:"age" binding:"required" example:"30"`
	Gender   string `json:"gender" binding:"required" example:"F"`
	Phone    string `json:"phone" binding:"required" example:"0812345678"`
	Email    string `json:"email" binding:"required" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"pw123"`
}

type LoginRequest struct {
	Name     string `json:"name" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"pw123"`
}

// UserIDResponse carries the id of a created or authenticated user.
type UserIDResponse struct {
	UserID uint `json:"userId" example:"1"`
}

// fallbackDummyHash is a well-formed Argon2id hash with the default
// parameters, used when a fresh dummy hash cannot be generated.
const fallbackDummyHash = "argon2id$v=19$m=19456,t=2,p=1$Zml0YnVkZHktdW5rbm93bg$AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8"

// dummyHash is verified against when the name is unknown so both failure
// paths cost one key derivation.
var dummyHash = sync.OnceValue(func() string {
	return dummyHashFrom(util.HashPassword)
})

func dummyHashFrom(hash func(string) (string, error)) string {
	h, err := hash("fitbuddy-unknown-user")
	if err != nil {
		log.Error().Err(err).Msg("dummy password hash failed, using fallback")
		return fallbackDummyHash
	}
	return h
}

// newUserFromRequest hashes the password and builds the row to insert.
func newUserFromRequest(req RegisterRequest) (model.User, error) {
	stored, err := util.HashPassword(req.Password)
	if err != nil {
		return model.User{}, err
	}
	return model.User{
		Name:     util.NormalizeName(req.Name),
		Age:      *req.Age,
		Gender:   req.Gender,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: stored,
	}, nil
}

// Register godoc
// @Summary      Register a user
// @Description  Create an account. The password is stored as an Argon2id hash.
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      200 {object} util.APIResponse{data=UserIDResponse} "User registered"
// @Failure      400 {object} util.APIResponse "Missing field"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /register [post]
func Register(c *gin.Context) {
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
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to register user", Err: err})
		return
	}
	if err := repository.CreateUser(c.Request.Context(), db, &user); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to register user", Err: err})
		return
	}

	p := clientParams(c)
	p.UserID, p.Name = user.ID, user.Name
	util.LogRegisterSuccess(p)

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "User registered successfully",
		Data: UserIDResponse{UserID: user.ID},
	})
}

// Login godoc
// @Summary      User login
// @Description  Verify a name and password. No token or session is issued.
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} util.APIResponse{data=UserIDResponse} "Login successful"
// @Failure      400 {object} util.APIResponse "Missing field"
// @Failure      401 {object} util.APIResponse "Invalid name or password"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSONOrRespond(c, &req, "Name and password are required") {
		return
	}
	name, ok := normalizedNameOrRespond(c, req.Name)
	if !ok {
		return
	}

	db, ok := ensureDB(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	p := clientParams(c)
	p.Name = name

	user, err := repository.FindCredentialByName(ctx, db, p.Name)
	if errors.Is(err, repository.ErrNotFound) {
		_, _ = util.VerifyPassword(req.Password, dummyHash())
		p.Reason = "user not found"
		util.LogLoginFailure(p)
		util.CallUserNotAuthorized(c, util.APIErrorParams{Msg: invalidCredentialsMsg, Err: ErrInvalidCredentials})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to log in", Err: err})
		return
	}
	p.UserID = user.ID

	match, err := util.VerifyPassword(req.Password, user.Password)
	if err != nil {
		p.Reason = "password verification error"
		util.LogLoginFailure(p)
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to log in", Err: err})
		return
	}
	if !match {
		p.Reason = "invalid password"
		util.LogLoginFailure(p)
		util.CallUserNotAuthorized(c, util.APIErrorParams{Msg: invalidCredentialsMsg, Err: ErrInvalidCredentials})
		return
	}

	upgradeLegacyPassword(ctx, db, user, req.Password, p)

	util.LogLoginSuccess(p)
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Login successful",
		Data: UserIDResponse{UserID: user.ID},
	})
}

// upgradeLegacyPassword rehashes a verified legacy password with Argon2id.
// Failures are logged and never affect the login response.
func upgradeLegacyPassword(ctx context.Context, db *gorm.DB, user model.User, plain string, p util.ClientParams) {
	if !util.NeedsRehash(user.Password) {
		return
	}
	stored, err := util.HashPassword(plain)
	if err == nil {
		err = repository.UpdateUserPassword(ctx, db, user.ID, stored)
	}
	if err != nil {
		log.Warn().Err(err).Uint("user_id", user.ID).Str(util.RequestIDKey, p.RequestID).Msg("password upgrade failed")
		return
	}
	util.LogPasswordUpgrade(p)
}
