package system

import (
	"net/http"
	"testing"

	test_utils "clientbase-backend/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func Test_Healthcheck_ReturnsOk(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	GetHealthcheckController().RegisterRoutes(router.Group("/api/v1"))

	var response HealthcheckResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/healthcheck",
		"",
		http.StatusOK,
		&response,
	)

	assert.Equal(t, "ok", response.Status)
}
