package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// ComplaintFilter captures the admin view's optional equality predicates.
// Values are passed through verbatim; filter-time enum validation is
// intentionally absent.
type ComplaintFilter struct {
	Department *string
	Region     *string
}

// ComplaintRepository encapsulates complaint persistence.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	GetByID(ctx context.Context, id int64) (*domain.Complaint, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Complaint, error)
	ListWithFilter(ctx context.Context, filter ComplaintFilter) ([]domain.ComplaintWithSubmitter, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Complaint, error)
}

type complaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository instantiates repository.
func NewComplaintRepository(pool *pgxpool.Pool) ComplaintRepository {
	return &complaintRepository{pool: pool}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        INSERT INTO complaints (owner_id, department, region, description, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, submitted_at`
	return r.pool.QueryRow(ctx, query,
		complaint.OwnerID,
		complaint.Department,
		complaint.Region,
		complaint.Description,
		complaint.Status,
	).Scan(&complaint.ID, &complaint.SubmittedAt)
}

func (r *complaintRepository) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	const query = `
        SELECT id, owner_id, department, region, description, status, submitted_at
        FROM complaints WHERE id=$1`

	var complaint domain.Complaint
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&complaint.ID,
		&complaint.OwnerID,
		&complaint.Department,
		&complaint.Region,
		&complaint.Description,
		&complaint.Status,
		&complaint.SubmittedAt,
	); err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Complaint, error) {
	const query = `
        SELECT id, owner_id, department, region, description, status, submitted_at
        FROM complaints WHERE owner_id=$1
        ORDER BY submitted_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func (r *complaintRepository) ListWithFilter(ctx context.Context, filter ComplaintFilter) ([]domain.ComplaintWithSubmitter, error) {
	base := `SELECT c.id, c.owner_id, c.department, c.region, c.description, c.status, c.submitted_at,
                    u.name, u.email
             FROM complaints c
             LEFT JOIN users u ON c.owner_id = u.id`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Department != nil {
		args = append(args, *filter.Department)
		clauses = append(clauses, fmt.Sprintf("c.department=$%d", len(args)))
	}
	if filter.Region != nil {
		args = append(args, *filter.Region)
		clauses = append(clauses, fmt.Sprintf("c.region=$%d", len(args)))
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY c.submitted_at DESC`,
		base, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ComplaintWithSubmitter
	for rows.Next() {
		var item domain.ComplaintWithSubmitter
		if err := rows.Scan(
			&item.ID,
			&item.OwnerID,
			&item.Department,
			&item.Region,
			&item.Description,
			&item.Status,
			&item.SubmittedAt,
			&item.SubmitterName,
			&item.SubmitterEmail,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *complaintRepository) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Complaint, error) {
	const query = `
        UPDATE complaints SET status=$1 WHERE id=$2
        RETURNING id, owner_id, department, region, description, status, submitted_at`

	var complaint domain.Complaint
	if err := r.pool.QueryRow(ctx, query, status, id).Scan(
		&complaint.ID,
		&complaint.OwnerID,
		&complaint.Department,
		&complaint.Region,
		&complaint.Description,
		&complaint.Status,
		&complaint.SubmittedAt,
	); err != nil {
		return nil, err
	}
	return &complaint, nil
}

func scanComplaints(rows pgx.Rows) ([]domain.Complaint, error) {
	var result []domain.Complaint
	for rows.Next() {
		var complaint domain.Complaint
		if err := rows.Scan(
			&complaint.ID,
			&complaint.OwnerID,
			&complaint.Department,
			&complaint.Region,
			&complaint.Description,
			&complaint.Status,
			&complaint.SubmittedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, complaint)
	}
	return result, rows.Err()
}
