package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"HSP-PORTAL/internal"
	"HSP-PORTAL/internal/models"
	"HSP-PORTAL/internal/projector"

	"github.com/google/uuid"
)

type ApplicationService struct {
	statistics *StatisticsService
}

func NewApplicationService(statistics *StatisticsService) *ApplicationService {
	return &ApplicationService{statistics: statistics}
}

// ApplicationFilter narrows List results. Zero values mean "no filter".
type ApplicationFilter struct {
	Status       string
	DepartmentID string
	Search       string // matched against name and ID number
	Limit        int
	Offset       int
}

var applicationStatusFlow = map[models.ApplicationStatus][]models.ApplicationStatus{
	models.ApplicationDraft:     {models.ApplicationSubmitted},
	models.ApplicationSubmitted: {models.ApplicationReviewing, models.ApplicationRejected},
	models.ApplicationReviewing: {models.ApplicationAccepted, models.ApplicationRejected},
	models.ApplicationAccepted:  {},
	models.ApplicationRejected:  {models.ApplicationReviewing},
}

// canTransition reports whether the review flow allows moving an application
// from one status to another.
func canTransition(from, to models.ApplicationStatus) bool {
	for _, next := range applicationStatusFlow[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Submit stores a new application. The form bag is kept verbatim in FormData;
// listing columns are promoted from it.
func (s *ApplicationService) Submit(formData map[string]interface{}) (*models.Application, error) {
	rec := projector.Record(formData)

	firstName := rec.String("firstName")
	lastName := rec.String("lastName")
	if firstName == "" && lastName == "" {
		return nil, fmt.Errorf("application must include an applicant name")
	}

	rawJSON, err := json.Marshal(formData)
	if err != nil {
		return nil, fmt.Errorf("failed to encode form data: %w", err)
	}

	now := time.Now()
	app := &models.Application{
		ID:              uuid.New().String(),
		Prefix:          rec.String("prefix"),
		FirstName:       firstName,
		LastName:        lastName,
		IDNumber:        rec.String("idNumber"),
		Email:           rec.String("email"),
		Phone:           rec.String("phone"),
		AppliedPosition: rec.String("appliedPosition"),
		DepartmentID:    rec.String("departmentId"),
		ExpectedSalary:  rec.String("expectedSalary"),
		FormData:        string(rawJSON),
		Status:          models.ApplicationSubmitted,
		SubmittedAt:     &now,
	}

	if err := internal.DB.Create(app).Error; err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	s.statistics.RecordApplicationSubmit()

	return app, nil
}

func (s *ApplicationService) List(filter *ApplicationFilter) ([]models.Application, int64, error) {
	var apps []models.Application
	var total int64

	query := internal.DB.Model(&models.Application{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DepartmentID != "" {
		query = query.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.Search != "" {
		like := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where(
			"first_name LIKE ? OR last_name LIKE ? OR id_number LIKE ?",
			like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Preload("Department").
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch applications: %w", err)
	}

	return apps, total, nil
}

func (s *ApplicationService) GetByID(id string) (*models.Application, error) {
	var app models.Application
	if err := internal.DB.Preload("Department").
		Preload("Documents").
		Where("id = ?", id).
		First(&app).Error; err != nil {
		return nil, fmt.Errorf("application not found: %w", err)
	}
	return &app, nil
}

// FormDataRecord decodes the stored form bag for field projection
func (s *ApplicationService) FormDataRecord(app *models.Application) (projector.Record, error) {
	var rec map[string]interface{}
	if err := json.Unmarshal([]byte(app.FormData), &rec); err != nil {
		return nil, fmt.Errorf("failed to decode form data for application %s: %w", app.ID, err)
	}
	return projector.Record(rec), nil
}

// UpdateStatus moves an application along the review flow, rejecting
// transitions the flow does not allow
func (s *ApplicationService) UpdateStatus(id string, status models.ApplicationStatus, reviewedBy, note string) (*models.Application, error) {
	app, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !canTransition(app.Status, status) {
		return nil, fmt.Errorf("cannot change application status from %s to %s", app.Status, status)
	}

	updates := map[string]interface{}{
		"status":      status,
		"reviewed_by": reviewedBy,
		"review_note": note,
	}
	if err := internal.DB.Model(app).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}

	return s.GetByID(id)
}

func (s *ApplicationService) Delete(id string) error {
	result := internal.DB.Where("id = ?", id).Delete(&models.Application{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("application not found")
	}
	return nil
}
