package endpoint

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ariebrainware/fitbuddy-api/middleware"
	"github.com/ariebrainware/fitbuddy-api/repository"
	"github.com/ariebrainware/fitbuddy-api/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// helper: ensure DB is available in context or respond with server error
func ensureDB(c *gin.Context) (*gorm.DB, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database connection not available",
			Err: fmt.Errorf("db is nil"),
		})
		return nil, false
	}
	return db, true
}

func bindJSONOrRespond(c *gin.Context, dst interface{}, msg string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: msg, Err: err})
		return false
	}
	return true
}

// parseIDParam reads a positive numeric path parameter.
func parseIDParam(c *gin.Context, name, label string) (uint, bool) {
	id, err := parseID(c.Param(name))
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: fmt.Sprintf("Invalid %s", label),
			Err: err,
		})
		return 0, false
	}
	return id, true
}

func parseID(raw string) (uint, error) {
	if raw == "" {
		return 0, fmt.Errorf("id is required")
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("id must be a positive integer")
	}
	return uint(n), nil
}

// respondRepoError maps a repository error to 404 or a generic 500.
func respondRepoError(c *gin.Context, err error, notFoundMsg, serverMsg string) {
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrDiseaseNotFound) {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: notFoundMsg, Err: err})
		return
	}
	util.CallServerError(c, util.APIErrorParams{Msg: serverMsg, Err: err})
}

func clientParams(c *gin.Context) util.ClientParams {
	return util.ClientParams{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		RequestID: middleware.GetRequestID(c),
	}
}

// normalizedNameOrRespond normalizes a name and rejects one that is blank
// after normalization.
func normalizedNameOrRespond(c *gin.Context, raw string) (string, bool) {
	name := util.NormalizeName(raw)
	if name == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Name is required",
			Err: fmt.Errorf("name must not be blank"),
		})
		return "", false
	}
	return name, true
}
