package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/apperrors"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/dberrors"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/helpers"
)

// InstituteRepository handles database operations for institutes
type InstituteRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInstituteRepository creates a new institute repository
func NewInstituteRepository(db *pgxpool.Pool) *InstituteRepository {
	return &InstituteRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateInstitute inserts a new institute
func (r *InstituteRepository) CreateInstitute(ctx context.Context, institute *models.Institute) (*models.Institute, error) {
	query := `
		INSERT INTO institutes (name, code, address, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		institute.Name,
		institute.Code,
		institute.Address,
		helpers.GetNullString(institute.Phone),
	).Scan(&institute.ID, &institute.CreatedAt, &institute.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrInstituteAlreadyExists
		}
		return nil, err
	}
	return institute, nil
}

// GetInstituteByID retrieves an institute by ID
func (r *InstituteRepository) GetInstituteByID(ctx context.Context, id int64) (*models.Institute, error) {
	query := `SELECT id, name, code, address, phone, created_at, updated_at FROM institutes WHERE id = $1`

	var institute models.Institute
	err := r.db.QueryRow(ctx, query, id).Scan(
		&institute.ID,
		&institute.Name,
		&institute.Code,
		&institute.Address,
		&institute.Phone,
		&institute.CreatedAt,
		&institute.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstituteNotFound
		}
		return nil, err
	}
	return &institute, nil
}

// ListInstitutes retrieves institutes with optional name search and pagination
func (r *InstituteRepository) ListInstitutes(ctx context.Context, nameQuery string, page, pageSize int) ([]*models.Institute, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	query := r.sb.Select("id", "name", "code", "address", "phone", "created_at", "updated_at").
		Column("COUNT(*) OVER() AS total_count").
		From("institutes")

	if nameQuery != "" {
		query = query.Where(squirrel.ILike{"name": "%" + nameQuery + "%"})
	}

	query = query.OrderBy("name").Limit(uint64(limit)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var institutes []*models.Institute
	var total int64
	for rows.Next() {
		var institute models.Institute
		err := rows.Scan(
			&institute.ID,
			&institute.Name,
			&institute.Code,
			&institute.Address,
			&institute.Phone,
			&institute.CreatedAt,
			&institute.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, err
		}
		institutes = append(institutes, &institute)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return institutes, total, nil
}

// UpdateInstitute persists changed institute fields
func (r *InstituteRepository) UpdateInstitute(ctx context.Context, institute *models.Institute) error {
	query := `
		UPDATE institutes
		SET name = $1, code = $2, address = $3, phone = $4, updated_at = NOW()
		WHERE id = $5`

	tag, err := r.db.Exec(ctx, query,
		institute.Name,
		institute.Code,
		institute.Address,
		helpers.GetNullString(institute.Phone),
		institute.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrInstituteAlreadyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInstituteNotFound
	}
	return nil
}

// DeleteInstitute removes an institute. Fails when users or courses
// still reference it.
func (r *InstituteRepository) DeleteInstitute(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM institutes WHERE id = $1", id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrInstituteHasRelations
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInstituteNotFound
	}
	return nil
}
