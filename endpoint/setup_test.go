package endpoint_test

import (
	"os"
	"testing"

	"github.com/ariebrainware/fitbuddy-api/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TestMain keeps handler output quiet and gin in test mode for the package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	log.Logger = zerolog.Nop()
	util.SetSecurityLogger(zerolog.Nop())

	os.Exit(m.Run())
}
