package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Optimizador-api/internal/domain"
	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
	"github.com/jhoicas/Optimizador-api/internal/domain/repository"
)

var _ repository.ApprovalRepository = (*ApprovalRepo)(nil)

// ApprovalRepo escritura de la cola de aprobación.
type ApprovalRepo struct {
	pool *pgxpool.Pool
}

// NewApprovalRepository construye el adaptador de la cola de aprobación.
func NewApprovalRepository(pool *pgxpool.Pool) *ApprovalRepo {
	return &ApprovalRepo{pool: pool}
}

// InsertRecords persiste los registros de una sumisión en una sola transacción:
// o quedan todos en la cola o no queda ninguno. El metadata viaja como JSON.
func (r *ApprovalRepo) InsertRecords(ctx context.Context, records []entity.ApprovalRecord) error {
	const query = `
	INSERT INTO approval_queue (
	    submission_id, approval_type, product_id,
	    from_location, to_location, supplier_id,
	    quantity, estimated_cost, priority,
	    approval_level, status, submitted_at, metadata
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("approval.InsertRecords begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, rec := range records {
		metadata, err := json.Marshal(rec.Metadata)
		if err != nil {
			return fmt.Errorf("approval.InsertRecords metadata %s: %w", rec.ProductID, err)
		}
		_, err = tx.Exec(ctx, query,
			rec.SubmissionID, rec.ApprovalType, rec.ProductID,
			nullIfEmpty(rec.FromLocation), nullIfEmpty(rec.ToLocation), nullIfEmpty(rec.SupplierID),
			rec.Quantity, rec.EstimatedCost, rec.Priority,
			rec.ApprovalLevel, rec.Status, rec.SubmittedAt, metadata,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("approval.InsertRecords %s/%s: %w", rec.ApprovalType, rec.ProductID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("approval.InsertRecords commit: %w", err)
	}
	return nil
}

// MarkAutoApproved marca todos los registros de la sumisión como aprobados por
// el sistema y devuelve cuántas filas cambiaron (cero si la sumisión no insertó
// registros).
func (r *ApprovalRepo) MarkAutoApproved(ctx context.Context, submissionID string) (int64, error) {
	const query = `
	UPDATE approval_queue
	SET status      = 'auto_approved',
	    approved_at = NOW(),
	    approved_by = 'system'
	WHERE submission_id = $1`

	tag, err := r.pool.Exec(ctx, query, submissionID)
	if err != nil {
		return 0, fmt.Errorf("approval.MarkAutoApproved: %w", err)
	}
	return tag.RowsAffected(), nil
}
