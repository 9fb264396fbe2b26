package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models/dto"
	"github.com/kimhouy1997/lms-portal-sub000/internal/app/services"
	"github.com/kimhouy1997/lms-portal-sub000/internal/middleware"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/helpers"
)

// InstituteController handles institute endpoints
type InstituteController struct {
	instituteService *services.InstituteService
}

// NewInstituteController creates a new InstituteController
func NewInstituteController(instituteService *services.InstituteService) *InstituteController {
	return &InstituteController{instituteService: instituteService}
}

// ListInstitutes returns institutes with optional name search
// @Summary List institutes
// @Tags institutes
// @Produce json
// @Param name query string false "Name search, case-insensitive substring"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.InstituteListResponse} "Institute page"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /institutes [get]
func (c *InstituteController) ListInstitutes(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	institutes, total, err := c.instituteService.ListInstitutes(ctx, ctx.Query("name"), page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.InstituteResponse, 0, len(institutes))
	for _, institute := range institutes {
		responses = append(responses, dto.FromInstitute(institute))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.InstituteListResponse{
			Institutes: responses,
			Pagination: helpers.NewPaginationInfo(total, page, pageSize),
		},
		Timestamp: time.Now(),
	})
}

// GetInstitute returns a single institute
// @Summary Get an institute
// @Tags institutes
// @Produce json
// @Param id path int true "Institute ID"
// @Success 200 {object} dto.APIResponse{data=dto.InstituteResponse} "Institute"
// @Failure 400 {object} dto.ErrorResponse "Invalid institute ID"
// @Failure 404 {object} dto.ErrorResponse "Institute not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /institutes/{id} [get]
func (c *InstituteController) GetInstitute(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	institute, err := c.instituteService.GetInstitute(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromInstitute(institute),
		Timestamp: time.Now(),
	})
}

// CreateInstitute adds a new institute
// @Summary Create an institute
// @Tags institutes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInstituteRequest true "Institute data"
// @Success 201 {object} dto.APIResponse{data=dto.InstituteResponse} "Institute created"
// @Failure 400 {object} dto.ErrorResponse "Invalid institute data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Institute already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /institutes [post]
func (c *InstituteController) CreateInstitute(ctx *gin.Context) {
	var req dto.CreateInstituteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	institute, err := c.instituteService.CreateInstitute(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromInstitute(institute),
		Timestamp: time.Now(),
	})
}

// UpdateInstitute modifies an institute
// @Summary Update an institute
// @Tags institutes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Institute ID"
// @Param request body dto.UpdateInstituteRequest true "Institute data"
// @Success 200 {object} dto.APIResponse{data=dto.InstituteResponse} "Institute updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid institute data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Institute not found"
// @Failure 409 {object} dto.ErrorResponse "Institute already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /institutes/{id} [put]
func (c *InstituteController) UpdateInstitute(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateInstituteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	institute, err := c.instituteService.UpdateInstitute(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromInstitute(institute),
		Timestamp: time.Now(),
	})
}

// DeleteInstitute removes an institute
// @Summary Delete an institute
// @Description Fails with a conflict while users or courses still reference the institute
// @Tags institutes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Institute ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Institute deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid institute ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Institute not found"
// @Failure 409 {object} dto.ErrorResponse "Institute still has users or courses"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /institutes/{id} [delete]
func (c *InstituteController) DeleteInstitute(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.instituteService.DeleteInstitute(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Institute deleted"},
		Timestamp: time.Now(),
	})
}
