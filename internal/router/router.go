package router

import (
	"github.com/razanodeh01/Huffman-Text-Compression/internal/handler"

	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	AnalysisHandler *handler.AnalysisHandler
}

func Register(r *gin.Engine, d Dependencies) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	v1 := r.Group("/api/v1")
	{
		analyses := v1.Group("/analyses")
		{
			analyses.POST("", d.AnalysisHandler.Create)
			analyses.GET("", d.AnalysisHandler.List)
			analyses.GET("/:id", d.AnalysisHandler.GetByID)
			analyses.GET("/:id/subset", d.AnalysisHandler.Subset)
		}
	}
}
