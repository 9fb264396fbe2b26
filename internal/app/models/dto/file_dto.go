package dto

// FileResponse represents uploaded file information
type FileResponse struct {
	ID           int64  `json:"id" example:"123"`
	FileName     string `json:"fileName" example:"lecture_slides.pdf"`
	FileURL      string `json:"fileUrl" example:"http://localhost:8080/uploads/123.pdf"`
	FileSize     int64  `json:"fileSize" example:"1048576"`
	FileType     string `json:"fileType" example:"application/pdf"`
	ResourceType string `json:"resourceType" example:"LESSON_RESOURCE"`
}
