package endpoint

import (
	"github.com/ariebrainware/fitbuddy-api/repository"
	"github.com/ariebrainware/fitbuddy-api/util"
	"github.com/gin-gonic/gin"
)

// GetProfile godoc
// @Summary      Get user profile
// @Description  User details with the latest assessment and the associated diseases joined with ", "
// @Tags         Profile
// @Produce      json
// @Param        user_id path int true "User ID"
// @Success      200 {object} util.APIResponse{data=model.Profile} "Profile retrieved"
// @Failure      400 {object} util.APIResponse "Invalid user ID"
// @Failure      404 {object} util.APIResponse "User not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/profile/{user_id} [get]
func GetProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "user_id", "user ID")
	if !ok {
		return
	}
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	profile, err := repository.GetProfile(c.Request.Context(), db, id)
	if err != nil {
		respondRepoError(c, err, "User not found", "Failed to retrieve profile")
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Profile retrieved", Data: profile})
}
