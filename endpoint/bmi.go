package endpoint

import (
	"github.com/ariebrainware/fitbuddy-api/model"
	"github.com/ariebrainware/fitbuddy-api/repository"
	"github.com/ariebrainware/fitbuddy-api/util"
	"github.com/gin-gonic/gin"
)

// CreateBMIRequest is one assessment submission. BMI is computed by the
// client and stored as sent.
type CreateBMIRequest struct {
	UserID *uint    `json:"userId" binding:"required" example:"1"`
	Weight *float64 `json:"weight" binding:"required" example:"62.5"`
	Height *float64 `json:"height" binding:"required" example:"165"`
	BMI    *float64 `json:"bmi" binding:"required" example:"22.96"`
}

// CreateBMI godoc
// @Summary      Save BMI
// @Description  Store a weight, height and BMI assessment for a user
// @Tags         BMI
// @Accept       json
// @Produce      json
// @Param        request body CreateBMIRequest true "Assessment"
// @Success      200 {object} util.APIResponse{data=model.HealthAssessment} "BMI data saved"
// @Failure      400 {object} util.APIResponse "Missing field"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /bmi [post]
func CreateBMI(c *gin.Context) {
	var req CreateBMIRequest
	if !bindJSONOrRespond(c, &req, "userId, weight, height and bmi are required") {
		return
	}
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	a := model.HealthAssessment{
		UserID: *req.UserID,
		Weight: *req.Weight,
		Height: *req.Height,
		BMI:    *req.BMI,
	}
	if err := repository.CreateAssessment(c.Request.Context(), db, &a); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to save BMI data", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "BMI data saved", Data: a})
}

// ListUserBMI godoc
// @Summary      List BMI records
// @Description  Every assessment with its owner's name, optionally for one user
// @Tags         BMI
// @Produce      json
// @Param        userId query int false "Restrict to one user"
// @Success      200 {object} util.APIResponse{data=[]model.UserBMI} "BMI records retrieved"
// @Failure      400 {object} util.APIResponse "Invalid user ID"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /getUserBMI [get]
func ListUserBMI(c *gin.Context) {
	var filter *uint
	if raw, present := c.GetQuery("userId"); present {
		id, err := parseID(raw)
		if err != nil {
			util.CallUserError(c, util.APIErrorParams{Msg: "Invalid user ID", Err: err})
			return
		}
		filter = &id
	}
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	rows, err := repository.ListUserBMI(c.Request.Context(), db, filter)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve BMI records", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "BMI records retrieved", Data: rows})
}
