package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"beacon/internal/models/db_models"
)

type ReportRepository interface {
	Insert(ctx context.Context, report *db_models.EmergencyReport) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.EmergencyReport, error)
	ListByReporter(ctx context.Context, reporterID uuid.UUID) ([]*db_models.EmergencyReport, error)
	ListAll(ctx context.Context) ([]*db_models.EmergencyReport, error)
	// VerifyPending moves a pending report to verified and credits the
	// reporter's reward in the same transaction. Returns the number of
	// report rows changed: zero means the report was not pending (or does
	// not exist), and nothing was credited.
	VerifyPending(ctx context.Context, reportID, actorID uuid.UUID, points int, reason string) (int64, error)
	DeclinePending(ctx context.Context, reportID, actorID uuid.UUID) (int64, error)
	ResolveVerified(ctx context.Context, reportID, actorID uuid.UUID, points int, reason string) (int64, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Insert(ctx context.Context, report *db_models.EmergencyReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.EmergencyReport, error) {
	var report db_models.EmergencyReport
	err := r.db.WithContext(ctx).Preload("Reporter").First(&report, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) ListByReporter(ctx context.Context, reporterID uuid.UUID) ([]*db_models.EmergencyReport, error) {
	var reports []*db_models.EmergencyReport
	err := r.db.WithContext(ctx).
		Where("reporter_id = ?", reporterID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) ListAll(ctx context.Context) ([]*db_models.EmergencyReport, error) {
	var reports []*db_models.EmergencyReport
	err := r.db.WithContext(ctx).
		Preload("Reporter").
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// transitionFromStatus performs the status-guarded update that serializes
// concurrent moderator actions: only the first transition matches the WHERE
// clause, every later attempt touches zero rows.
func transitionFromStatus(tx *gorm.DB, reportID uuid.UUID, from, to db_models.ReportStatus, updates map[string]interface{}) (int64, error) {
	updates["status"] = to
	updates["updated_at"] = time.Now().Unix()
	result := tx.Model(&db_models.EmergencyReport{}).
		Where("id = ? AND status = ?", reportID, from).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *reportRepository) VerifyPending(ctx context.Context, reportID, actorID uuid.UUID, points int, reason string) (int64, error) {
	var rows int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		rows, err = transitionFromStatus(tx, reportID, db_models.ReportStatusPending, db_models.ReportStatusVerified,
			map[string]interface{}{"verified_by": actorID})
		if err != nil || rows == 0 {
			return err
		}

		var report db_models.EmergencyReport
		if err := tx.First(&report, "id = ?", reportID).Error; err != nil {
			return err
		}
		return tx.Create(&db_models.Reward{
			UserID: report.ReporterID,
			Points: points,
			Reason: reason,
		}).Error
	})
	if err != nil {
		return 0, err
	}
	return rows, nil
}

func (r *reportRepository) DeclinePending(ctx context.Context, reportID, _ uuid.UUID) (int64, error) {
	// verified_by stays empty on decline: it only ever names the verifier
	// of a verified or resolved report.
	return transitionFromStatus(r.db.WithContext(ctx), reportID,
		db_models.ReportStatusPending, db_models.ReportStatusDeclined,
		map[string]interface{}{})
}

func (r *reportRepository) ResolveVerified(ctx context.Context, reportID, actorID uuid.UUID, points int, reason string) (int64, error) {
	var rows int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		rows, err = transitionFromStatus(tx, reportID, db_models.ReportStatusVerified, db_models.ReportStatusResolved,
			map[string]interface{}{"resolved_by": actorID})
		if err != nil || rows == 0 {
			return err
		}
		if points <= 0 {
			return nil
		}

		var report db_models.EmergencyReport
		if err := tx.First(&report, "id = ?", reportID).Error; err != nil {
			return err
		}
		return tx.Create(&db_models.Reward{
			UserID: report.ReporterID,
			Points: points,
			Reason: reason,
		}).Error
	})
	if err != nil {
		return 0, err
	}
	return rows, nil
}
