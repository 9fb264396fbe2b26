package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/apperrors"
)

// FileRepository handles database operations for uploaded files
type FileRepository struct {
	db *pgxpool.Pool
}

// NewFileRepository creates a new file repository
func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{db: db}
}

// CreateFile records an uploaded file
func (r *FileRepository) CreateFile(ctx context.Context, file *models.File) (*models.File, error) {
	query := `
		INSERT INTO files (file_name, file_path, file_url, file_size, file_type, resource_type, resource_id, uploaded_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		file.FileName,
		file.FilePath,
		file.FileURL,
		file.FileSize,
		file.FileType,
		file.ResourceType,
		file.ResourceID,
		file.UploadedBy,
	).Scan(&file.ID, &file.CreatedAt, &file.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// GetFileByID retrieves a file record by ID
func (r *FileRepository) GetFileByID(ctx context.Context, id int64) (*models.File, error) {
	query := `
		SELECT id, file_name, file_path, file_url, file_size, file_type, resource_type, resource_id, uploaded_by, created_at, updated_at
		FROM files
		WHERE id = $1`

	var file models.File
	err := r.db.QueryRow(ctx, query, id).Scan(
		&file.ID,
		&file.FileName,
		&file.FilePath,
		&file.FileURL,
		&file.FileSize,
		&file.FileType,
		&file.ResourceType,
		&file.ResourceID,
		&file.UploadedBy,
		&file.CreatedAt,
		&file.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, err
	}
	return &file, nil
}

// ListFilesByResource retrieves the files attached to an entity
func (r *FileRepository) ListFilesByResource(ctx context.Context, resourceType models.FileType, resourceID int64) ([]*models.File, error) {
	query := `
		SELECT id, file_name, file_path, file_url, file_size, file_type, resource_type, resource_id, uploaded_by, created_at, updated_at
		FROM files
		WHERE resource_type = $1 AND resource_id = $2
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, resourceType, resourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []*models.File
	for rows.Next() {
		var file models.File
		err := rows.Scan(
			&file.ID,
			&file.FileName,
			&file.FilePath,
			&file.FileURL,
			&file.FileSize,
			&file.FileType,
			&file.ResourceType,
			&file.ResourceID,
			&file.UploadedBy,
			&file.CreatedAt,
			&file.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		files = append(files, &file)
	}
	return files, rows.Err()
}

// DeleteFile removes a file record
func (r *FileRepository) DeleteFile(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM files WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
