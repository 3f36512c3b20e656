// internal/services/application_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/jobtracker/internal/models"
	"github.com/javajoker/jobtracker/internal/utils"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationService struct {
	db  *gorm.DB
	now func() time.Time
}

type ApplicationListParams struct {
	utils.PaginationParams
	Status *models.ApplicationStatus `json:"status,omitempty"`
	Query  string                    `json:"q,omitempty"`
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{
		db:  db,
		now: time.Now,
	}
}

// ListApplications returns applications newest-applied first. The total is
// the number of rows matching the filters, ignoring pagination.
func (s *ApplicationService) ListApplications(ctx context.Context, params ApplicationListParams) ([]models.Application, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Application{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if q := strings.TrimSpace(params.Query); q != "" {
		pattern := "%" + escapeLike(strings.ToLower(q)) + "%"
		query = query.Where(
			`LOWER(company_name) LIKE ? ESCAPE '\' OR LOWER(role_title) LIKE ? ESCAPE '\'`,
			pattern, pattern,
		)
	}

	var total int64
	if params.Enabled() {
		if err := query.Count(&total).Error; err != nil {
			return nil, 0, fmt.Errorf("failed to count applications: %w", err)
		}
	}

	var applications []models.Application
	err := utils.ApplyPagination(query, params.PaginationParams).
		Order("applied_on DESC").
		Order("created_at DESC").
		Order("id DESC").
		Find(&applications).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}

	if !params.Enabled() {
		total = int64(len(applications))
	}

	return applications, total, nil
}

func (s *ApplicationService) GetApplication(ctx context.Context, id int64) (*models.Application, error) {
	var application models.Application
	if err := s.db.WithContext(ctx).First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application %d: %w", id, err)
	}
	return &application, nil
}

func (s *ApplicationService) CreateApplication(ctx context.Context, req *ApplicationParams) (*models.Application, error) {
	application := models.NewApplication()

	if errs := s.assignAndValidate(ctx, application, req); len(errs) > 0 {
		return nil, errs
	}

	if err := s.db.WithContext(ctx).Create(application).Error; err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	logrus.WithField("application_id", application.ID).Debug("Application created")
	return application, nil
}

// UpdateApplication changes only the fields present in req. Concurrent
// writers are not detected; the last write wins.
func (s *ApplicationService) UpdateApplication(ctx context.Context, id int64, req *ApplicationParams) (*models.Application, error) {
	application, err := s.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	if errs := s.assignAndValidate(ctx, application, req); len(errs) > 0 {
		return nil, errs
	}

	result := s.db.WithContext(ctx).
		Model(application).
		Select("*").
		Omit("id", "created_at").
		Updates(application)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update application %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrApplicationNotFound
	}

	logrus.WithField("application_id", application.ID).Debug("Application updated")
	return application, nil
}

func (s *ApplicationService) DeleteApplication(ctx context.Context, id int64) error {
	application, err := s.GetApplication(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(application).Error; err != nil {
		return fmt.Errorf("failed to delete application %d: %w", id, err)
	}

	logrus.WithField("application_id", id).Debug("Application deleted")
	return nil
}

// assignAndValidate applies req to application and runs the full rule set.
// A field whose input could not be parsed reports only the parse error.
func (s *ApplicationService) assignAndValidate(ctx context.Context, application *models.Application, req *ApplicationParams) utils.ValidationErrors {
	errs := req.ApplyTo(application)

	ctx = utils.WithToday(ctx, models.DateOf(s.now()))
	for _, fe := range utils.ValidateApplication(ctx, application) {
		if !errs.Has(fe.Field) {
			errs = append(errs, fe)
		}
	}

	return errs
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
