package repository

import (
	"ReportDeskAPI/internal/entity"
	"context"
	"time"

	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{
		db: db,
	}
}

func (r *ReportRepository) Create(ctx context.Context, report *entity.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *ReportRepository) FindByID(ctx context.Context, id int64) (*entity.Report, error) {
	var report entity.Report
	if err := r.db.WithContext(ctx).First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepository) ListAll(ctx context.Context, status entity.ReportStatus) ([]entity.Report, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var reports []entity.Report
	if err := query.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *ReportRepository) ListBySubmitter(ctx context.Context, submitterID int64, status entity.ReportStatus) ([]entity.Report, error) {
	query := r.db.WithContext(ctx).
		Where("submitted_by = ?", submitterID).
		Order("created_at DESC, id DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var reports []entity.Report
	if err := query.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// TransitionFromPending moves a report into a terminal status with a single
// conditional UPDATE. The status predicate is the concurrency guard: when
// two admins race on the same report, only the write that still observes
// "pending" affects a row. Returns the number of rows updated.
func (r *ReportRepository) TransitionFromPending(ctx context.Context, id int64, status entity.ReportStatus, response string, resolvedBy int64, resolvedAt time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&entity.Report{}).
		Where("id = ? AND status = ?", id, entity.StatusPending).
		Updates(map[string]interface{}{
			"status":      status,
			"response":    response,
			"resolved_by": resolvedBy,
			"resolved_at": resolvedAt,
		})
	return tx.RowsAffected, tx.Error
}

func (r *ReportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Report{}).Count(&count).Error
	return count, err
}

func (r *ReportRepository) CountByStatus(ctx context.Context, status entity.ReportStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Report{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
