package endpoint

import (
	"github.com/ariebrainware/fitbuddy-api/middleware"
	"github.com/ariebrainware/fitbuddy-api/repository"
	"github.com/ariebrainware/fitbuddy-api/util"
	"github.com/gin-gonic/gin"
)

// ListDiseases godoc
// @Summary      List all diseases
// @Description  Get the id and name of every catalog disease
// @Tags         Disease
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]model.DiseaseSummary} "Diseases retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /diseases [get]
func ListDiseases(c *gin.Context) {
	ctx := c.Request.Context()
	cache := middleware.GetDiseaseCache(c)

	if list, hit := cache.List(ctx); hit {
		util.CallSuccessOK(c, util.APISuccessParams{Msg: "Diseases retrieved", Data: list})
		return
	}

	db, ok := ensureDB(c)
	if !ok {
		return
	}
	list, err := repository.ListDiseases(ctx, db)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve diseases", Err: err})
		return
	}
	cache.SetList(ctx, list)

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Diseases retrieved", Data: list})
}

// GetDiseaseInfo godoc
// @Summary      Get disease
// @Description  Get a catalog disease with its exercise guidance
// @Tags         Disease
// @Produce      json
// @Param        diseaseId path int true "Disease ID"
// @Success      200 {object} util.APIResponse{data=model.Disease} "Disease retrieved"
// @Failure      400 {object} util.APIResponse "Invalid disease ID"
// @Failure      404 {object} util.APIResponse "Disease not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /disease/{diseaseId} [get]
func GetDiseaseInfo(c *gin.Context) {
	id, ok := parseIDParam(c, "diseaseId", "disease ID")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	cache := middleware.GetDiseaseCache(c)

	if d, hit := cache.Get(ctx, id); hit {
		util.CallSuccessOK(c, util.APISuccessParams{Msg: "Disease retrieved", Data: d})
		return
	}

	db, ok := ensureDB(c)
	if !ok {
		return
	}
	d, err := repository.GetDisease(ctx, db, id)
	if err != nil {
		respondRepoError(c, err, "Disease not found", "Failed to retrieve disease")
		return
	}
	cache.Set(ctx, d)

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Disease retrieved", Data: d})
}
