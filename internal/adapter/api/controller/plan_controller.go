package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/animai-studio/internal/adapter/api/dto"
	"github.com/hugohenrick/animai-studio/pkg/plans"
)

// PlanController gerencia as requisições do catálogo de planos
type PlanController struct{}

// NewPlanController cria uma nova instância de PlanController
func NewPlanController() *PlanController {
	return &PlanController{}
}

// List retorna o catálogo de planos de assinatura
// @Summary Lista os planos de assinatura
// @Description Retorna o catálogo estático de planos
// @Tags plans
// @Produce json
// @Success 200 {array} plans.SubscriptionPlan
// @Router /plans [get]
func (c *PlanController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, plans.SubscriptionPlans)
}

// GetByID retorna um plano específico do catálogo
// @Summary Busca um plano pelo ID
// @Description Retorna um plano do catálogo pelo seu ID
// @Tags plans
// @Produce json
// @Param id path string true "ID do plano"
// @Success 200 {object} plans.SubscriptionPlan
// @Failure 404 {object} dto.ErrorResponse
// @Router /plans/{id} [get]
func (c *PlanController) GetByID(ctx *gin.Context) {
	p := plans.FindByID(ctx.Param("id"))
	if p == nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Plano não encontrado", ""))
		return
	}

	ctx.JSON(http.StatusOK, p)
}
