package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @ID          health
// @Summary     Testing API
// @Description For testing whether the API is working correctly or not.
// @Tags        Testing
// @Produce     json
// @Success     200 {object} handlers.Response
// @Router      / [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Status: true, Message: "API is working..."})
}
