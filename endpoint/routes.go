package endpoint

import (
	"fmt"

	"github.com/ariebrainware/fitbuddy-api/util"
	"github.com/gin-gonic/gin"
)

// Index godoc
// @Summary      Liveness
// @Tags         Health
// @Produce      json
// @Success      200 {object} util.APIResponse
// @Router       / [get]
func Index(appName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		util.CallSuccessOK(c, util.APISuccessParams{Msg: fmt.Sprintf("Welcome to %s!", appName)})
	}
}

// RegisterRoutes mounts every API handler on r.
func RegisterRoutes(r gin.IRouter, appName string) {
	r.GET("/", Index(appName))

	r.POST("/register", Register)
	r.POST("/login", Login)

	r.GET("/api/profile/:user_id", GetProfile)
	r.PUT("/api/users/:userId", UpdateUser)

	r.GET("/users", ListUsers)
	r.POST("/users", CreateUser)
	r.GET("/users/:id", GetUserInfo)
	r.PUT("/users/:userId", UpdateUser)
	r.DELETE("/users/:userId", DeleteUser)

	r.POST("/bmi", CreateBMI)
	r.GET("/getUserBMI", ListUserBMI)

	r.GET("/diseases", ListDiseases)
	r.GET("/disease/:diseaseId", GetDiseaseInfo)
	r.POST("/user-disease", AssociateDisease)
}
