package endpoint

import (
	"github.com/ariebrainware/fitbuddy-api/repository"
	"github.com/ariebrainware/fitbuddy-api/util"
	"github.com/gin-gonic/gin"
)

type AssociateDiseaseRequest struct {
	UserID    *uint `json:"userId" binding:"required" example:"1"`
	DiseaseID *uint `json:"diseaseId" binding:"required" example:"42"`
}

// AssociateDisease godoc
// @Summary      Associate disease with user
// @Description  Copy a catalog disease into a new user association. Repeating the call adds another row.
// @Tags         Disease
// @Accept       json
// @Produce      json
// @Param        request body AssociateDiseaseRequest true "User and disease"
// @Success      200 {object} util.APIResponse{data=model.UserDisease} "Disease associated"
// @Failure      400 {object} util.APIResponse "Missing field"
// @Failure      404 {object} util.APIResponse "Disease not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /user-disease [post]
func AssociateDisease(c *gin.Context) {
	var req AssociateDiseaseRequest
	if !bindJSONOrRespond(c, &req, "userId and diseaseId are required") {
		return
	}
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	// always read from the database, never the catalog cache
	link, err := repository.AssociateDisease(c.Request.Context(), db, *req.UserID, *req.DiseaseID)
	if err != nil {
		respondRepoError(c, err, "Disease not found", "Failed to associate disease")
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Disease associated with user", Data: link})
}
