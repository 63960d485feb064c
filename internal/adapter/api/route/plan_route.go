package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/animai-studio/internal/adapter/api/controller"
)

// SetupPlanRoutes configura as rotas do catálogo de planos
func SetupPlanRoutes(router *gin.RouterGroup, planController *controller.PlanController) {
	plansRouter := router.Group("/plans")
	{
		plansRouter.GET("", planController.List)
		plansRouter.GET("/:id", planController.GetByID)
	}
}
