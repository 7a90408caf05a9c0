package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the intent administration endpoints on the given
// router group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	intents := rg.Group("/intents")
	{
		intents.GET("", h.List)
		intents.GET("/:id", h.Detail)
		intents.POST("", h.ApplySingle)
		intents.POST("/validate", h.ValidateOnly)
		intents.POST("/bulk", h.StageBulk)
		intents.POST("/bulk/activate", h.ActivateStaged)
		intents.POST("/import/sheets", h.ImportSheets)
	}
}
