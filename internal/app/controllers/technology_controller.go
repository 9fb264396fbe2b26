package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models/dto"
	"github.com/kimhouy1997/lms-portal-sub000/internal/app/services"
	"github.com/kimhouy1997/lms-portal-sub000/internal/middleware"
)

// TechnologyController handles technology tag endpoints
type TechnologyController struct {
	technologyService *services.TechnologyService
}

// NewTechnologyController creates a new TechnologyController
func NewTechnologyController(technologyService *services.TechnologyService) *TechnologyController {
	return &TechnologyController{technologyService: technologyService}
}

// ListTechnologies returns every technology tag
// @Summary List technologies
// @Tags technologies
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Technology} "Technologies"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /technologies [get]
func (c *TechnologyController) ListTechnologies(ctx *gin.Context) {
	technologies, err := c.technologyService.ListTechnologies(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      technologies,
		Timestamp: time.Now(),
	})
}

// CreateTechnology adds a new technology tag
// @Summary Create a technology
// @Tags technologies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTechnologyRequest true "Technology data"
// @Success 201 {object} dto.APIResponse{data=models.Technology} "Technology created"
// @Failure 400 {object} dto.ErrorResponse "Invalid technology data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Technology already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /technologies [post]
func (c *TechnologyController) CreateTechnology(ctx *gin.Context) {
	var req dto.CreateTechnologyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	tech, err := c.technologyService.CreateTechnology(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      tech,
		Timestamp: time.Now(),
	})
}

// UpdateTechnology renames a technology tag
// @Summary Update a technology
// @Tags technologies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Technology ID"
// @Param request body dto.UpdateTechnologyRequest true "Technology data"
// @Success 200 {object} dto.APIResponse{data=models.Technology} "Technology updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid technology data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Technology not found"
// @Failure 409 {object} dto.ErrorResponse "Technology already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /technologies/{id} [put]
func (c *TechnologyController) UpdateTechnology(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateTechnologyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	tech, err := c.technologyService.UpdateTechnology(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      tech,
		Timestamp: time.Now(),
	})
}

// DeleteTechnology removes a technology tag
// @Summary Delete a technology
// @Tags technologies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Technology ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Technology deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid technology ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Technology not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /technologies/{id} [delete]
func (c *TechnologyController) DeleteTechnology(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.technologyService.DeleteTechnology(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Technology deleted"},
		Timestamp: time.Now(),
	})
}
