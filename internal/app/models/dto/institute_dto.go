package dto

import (
	"time"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
)

// InstituteResponse represents basic institute information
type InstituteResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Address   string    `json:"address"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromInstitute converts a models.Institute to an InstituteResponse
func FromInstitute(institute *models.Institute) InstituteResponse {
	if institute == nil {
		return InstituteResponse{}
	}
	return InstituteResponse{
		ID:        institute.ID,
		Name:      institute.Name,
		Code:      institute.Code,
		Address:   institute.Address,
		Phone:     institute.Phone,
		CreatedAt: institute.CreatedAt,
		UpdatedAt: institute.UpdatedAt,
	}
}

// CreateInstituteRequest represents institute creation data
type CreateInstituteRequest struct {
	Name    string  `json:"name" binding:"required,max=255"`
	Code    string  `json:"code" binding:"required,max=50"`
	Address string  `json:"address"`
	Phone   *string `json:"phone,omitempty"`
}

// UpdateInstituteRequest represents institute update data
type UpdateInstituteRequest struct {
	Name    string  `json:"name" binding:"required,max=255"`
	Code    string  `json:"code" binding:"required,max=50"`
	Address string  `json:"address"`
	Phone   *string `json:"phone,omitempty"`
}

// InstituteListResponse represents a paginated list of institutes
type InstituteListResponse struct {
	Institutes []InstituteResponse `json:"institutes"`
	Pagination PaginationInfo      `json:"pagination"`
}
