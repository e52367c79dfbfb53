package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"beacon/internal/config"
	"beacon/internal/events"
	"beacon/internal/models/db_models"
	"beacon/internal/models/response_models"
	"beacon/internal/repositories"
	"beacon/pkg/utils"
)

type SubmitReportInput struct {
	Title        string
	Description  string
	Type         string
	LocationLink string
	ImagePath    string
	// Extra form fields the client sent that we store verbatim.
	Metadata map[string]string
}

// ReportTransition is the shared shape of Verify, Decline and Resolve.
type ReportTransition func(ctx context.Context, actor *db_models.Account, reportID uuid.UUID) (*db_models.EmergencyReport, error)

type ReportServiceInterface interface {
	Submit(ctx context.Context, reporter *db_models.Account, input SubmitReportInput) (*db_models.EmergencyReport, error)
	Verify(ctx context.Context, actor *db_models.Account, reportID uuid.UUID) (*db_models.EmergencyReport, error)
	Decline(ctx context.Context, actor *db_models.Account, reportID uuid.UUID) (*db_models.EmergencyReport, error)
	Resolve(ctx context.Context, actor *db_models.Account, reportID uuid.UUID) (*db_models.EmergencyReport, error)
	// ListForRole returns the reports the acting account may see: a
	// reporter sees only their own, responders and admins see all.
	ListForRole(ctx context.Context, actor *db_models.Account) ([]*db_models.EmergencyReport, error)
}

type ReportService struct {
	reportRepo repositories.ReportRepository
	cfg        *config.Config
	publisher  events.Publisher
	logger     *logrus.Logger
}

func NewReportService(
	reportRepo repositories.ReportRepository,
	cfg *config.Config,
	publisher events.Publisher,
	logger *logrus.Logger,
) ReportServiceInterface {
	return &ReportService{
		reportRepo: reportRepo,
		cfg:        cfg,
		publisher:  publisher,
		logger:     logger,
	}
}

func validateSubmitInput(input SubmitReportInput) error {
	details := map[string][]string{}
	if input.Title == "" {
		details["title"] = []string{"title is required"}
	}
	if input.Description == "" {
		details["description"] = []string{"description is required"}
	}
	if input.LocationLink == "" {
		details["location_link"] = []string{"location link is required"}
	}
	if !db_models.ValidReportType(db_models.ReportType(input.Type)) {
		details["type"] = []string{"type must be one of accident, fire, medical, security, other"}
	}
	if len(details) > 0 {
		return &utils.ValidationError{Details: details}
	}
	return nil
}

func (s *ReportService) Submit(ctx context.Context, reporter *db_models.Account, input SubmitReportInput) (*db_models.EmergencyReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "report",
		"method":      "Submit",
		"reporter_id": reporter.ID,
	})

	if err := validateSubmitInput(input); err != nil {
		return nil, err
	}

	report := &db_models.EmergencyReport{
		ReporterID:   reporter.ID,
		Title:        input.Title,
		Description:  input.Description,
		Type:         db_models.ReportType(input.Type),
		Status:       db_models.ReportStatusPending,
		LocationLink: input.LocationLink,
		ImagePath:    input.ImagePath,
	}
	if len(input.Metadata) > 0 {
		raw, err := json.Marshal(input.Metadata)
		if err == nil {
			report.Metadata = raw
		}
	}

	if err := s.reportRepo.Insert(ctx, report); err != nil {
		log.WithError(err).Error("Failed to insert report")
		return nil, utils.ErrDatabaseError
	}

	s.publishReportEvent(events.ReportSubmitted, report)
	log.WithField("report_id", report.ID).Info("Emergency report submitted")
	return report, nil
}

func (s *ReportService) Verify(ctx context.Context, actor *db_models.Account, reportID uuid.UUID) (*db_models.EmergencyReport, error) {
	if !actor.CanModerate() {
		return nil, utils.ErrForbidden
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "Verify",
		"report_id": reportID,
		"actor_id":  actor.ID,
	})

	rows, err := s.reportRepo.VerifyPending(ctx, reportID, actor.ID, s.cfg.VerifyRewardPoints, "Emergency report verified")
	if err != nil {
		log.WithError(err).Error("Failed to verify report")
		return nil, utils.ErrDatabaseError
	}

	report, ferr := s.finishTransition(ctx, rows, reportID)
	if ferr != nil {
		return nil, ferr
	}

	s.publishReportEvent(events.ReportVerified, report)
	log.Info("Report verified")
	return report, nil
}

func (s *ReportService) Decline(ctx context.Context, actor *db_models.Account, reportID uuid.UUID) (*db_models.EmergencyReport, error) {
	if !actor.CanModerate() {
		return nil, utils.ErrForbidden
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "Decline",
		"report_id": reportID,
		"actor_id":  actor.ID,
	})

	rows, err := s.reportRepo.DeclinePending(ctx, reportID, actor.ID)
	if err != nil {
		log.WithError(err).Error("Failed to decline report")
		return nil, utils.ErrDatabaseError
	}

	report, ferr := s.finishTransition(ctx, rows, reportID)
	if ferr != nil {
		return nil, ferr
	}

	s.publishReportEvent(events.ReportDeclined, report)
	log.Info("Report declined")
	return report, nil
}

func (s *ReportService) Resolve(ctx context.Context, actor *db_models.Account, reportID uuid.UUID) (*db_models.EmergencyReport, error) {
	if !actor.CanModerate() {
		return nil, utils.ErrForbidden
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "Resolve",
		"report_id": reportID,
		"actor_id":  actor.ID,
	})

	rows, err := s.reportRepo.ResolveVerified(ctx, reportID, actor.ID, s.cfg.ResolveRewardPoints, "Emergency report resolved")
	if err != nil {
		log.WithError(err).Error("Failed to resolve report")
		return nil, utils.ErrDatabaseError
	}

	report, ferr := s.finishTransition(ctx, rows, reportID)
	if ferr != nil {
		return nil, ferr
	}

	s.publishReportEvent(events.ReportResolved, report)
	log.Info("Report resolved")
	return report, nil
}

// finishTransition resolves the ambiguity of a zero-row guarded update:
// a missing report is NotFound, an existing one lost the transition race
// (or was already past the required status).
func (s *ReportService) finishTransition(ctx context.Context, rows int64, reportID uuid.UUID) (*db_models.EmergencyReport, error) {
	report, err := s.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if report == nil {
		return nil, utils.ErrNotFound
	}
	if rows == 0 {
		return nil, utils.ErrInvalidTransition
	}
	return report, nil
}

func (s *ReportService) ListForRole(ctx context.Context, actor *db_models.Account) ([]*db_models.EmergencyReport, error) {
	var (
		reports []*db_models.EmergencyReport
		err     error
	)
	if actor.IsAdmin || actor.Role != db_models.RoleReporter {
		reports, err = s.reportRepo.ListAll(ctx)
	} else {
		reports, err = s.reportRepo.ListByReporter(ctx, actor.ID)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return reports, nil
}

func (s *ReportService) publishReportEvent(name string, report *db_models.EmergencyReport) {
	s.publisher.Publish(events.Event{Name: name, Data: response_models.ToReportResponse(report)})
}
