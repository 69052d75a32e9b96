package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tenderdesk/tenderdesk-backend/internal/dto"
	"github.com/tenderdesk/tenderdesk-backend/internal/models"
	"github.com/tenderdesk/tenderdesk-backend/internal/rbac"
	"gorm.io/gorm"
)

var (
	ErrTenderNotFound = errors.New("tender not found")
	ErrTenderNotDraft = errors.New("only draft tenders can be published")
)

// ValidationError carries the specific message returned as a BadRequest.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErr(msg string) error { return &ValidationError{msg: msg} }

type TenderService struct {
	db *gorm.DB
}

func NewTenderService(db *gorm.DB) *TenderService {
	return &TenderService{db: db}
}

// tenderInput is the validated form of a TenderRequest.
type tenderInput struct {
	title       string
	description string
	budget      float64
	startDate   time.Time
	deadline    time.Time
	department  string
	status      string
}

func validateTenderRequest(req *dto.TenderRequest) (*tenderInput, error) {
	if req.Title == "" || req.Description == "" || req.Budget == 0 ||
		req.StartDate == "" || req.Deadline == "" || req.Department == "" {
		return nil, validationErr("All required fields must be provided")
	}
	if strings.TrimSpace(req.Department) == "" {
		return nil, validationErr("Department cannot be empty")
	}
	if req.Budget <= 0 {
		return nil, validationErr("Budget must be a positive number")
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, validationErr("Invalid date format")
	}
	end, err := parseDate(req.Deadline)
	if err != nil {
		return nil, validationErr("Invalid date format")
	}
	if !start.Before(end) {
		return nil, validationErr("Start date must be before deadline")
	}

	status := req.Status
	if status == "" {
		status = models.TenderStatusDraft
	}

	return &tenderInput{
		title:       strings.TrimSpace(req.Title),
		description: strings.TrimSpace(req.Description),
		budget:      req.Budget,
		startDate:   start,
		deadline:    end,
		department:  strings.TrimSpace(req.Department),
		status:      status,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// Create validates and stores a new tender owned by the caller. Status
// defaults to draft when unspecified.
func (s *TenderService) Create(req *dto.TenderRequest, callerID uuid.UUID) (*models.Tender, error) {
	input, err := validateTenderRequest(req)
	if err != nil {
		return nil, err
	}

	tender := models.Tender{
		Title:       input.title,
		Description: input.description,
		Budget:      input.budget,
		StartDate:   input.startDate,
		Deadline:    input.deadline,
		Department:  input.department,
		Status:      input.status,
		CreatedBy:   callerID,
	}

	if err := s.db.Create(&tender).Error; err != nil {
		return nil, fmt.Errorf("failed to create tender: %w", err)
	}
	return &tender, nil
}

// List returns tenders newest-first with the creator joined in. Non-admin
// callers only see published tenders.
func (s *TenderService) List(callerRole string) ([]models.Tender, error) {
	query := s.db.Preload("Creator").Order("created_at DESC")
	if rbac.Role(callerRole) != rbac.RoleAdmin {
		query = query.Where("status = ?", models.TenderStatusPublished)
	}

	var tenders []models.Tender
	if err := query.Find(&tenders).Error; err != nil {
		return nil, fmt.Errorf("failed to list tenders: %w", err)
	}
	return tenders, nil
}

func (s *TenderService) GetByID(id uuid.UUID) (*models.Tender, error) {
	var tender models.Tender
	if err := s.db.Preload("Creator").First(&tender, "id = ?", id).Error; err != nil {
		return nil, ErrTenderNotFound
	}
	return &tender, nil
}

// Update replaces all editable fields after create-level validation.
func (s *TenderService) Update(id uuid.UUID, req *dto.TenderRequest) (*models.Tender, error) {
	input, err := validateTenderRequest(req)
	if err != nil {
		return nil, err
	}

	var tender models.Tender
	if err := s.db.First(&tender, "id = ?", id).Error; err != nil {
		return nil, ErrTenderNotFound
	}

	tender.Title = input.title
	tender.Description = input.description
	tender.Budget = input.budget
	tender.StartDate = input.startDate
	tender.Deadline = input.deadline
	tender.Department = input.department
	tender.Status = input.status

	if err := s.db.Save(&tender).Error; err != nil {
		return nil, fmt.Errorf("failed to update tender: %w", err)
	}
	return &tender, nil
}

// Publish moves a draft tender to published. Any other current status is a
// BadRequest, which also makes a second publish fail.
func (s *TenderService) Publish(id uuid.UUID) (*models.Tender, error) {
	var tender models.Tender
	if err := s.db.First(&tender, "id = ?", id).Error; err != nil {
		return nil, ErrTenderNotFound
	}

	if tender.Status != models.TenderStatusDraft {
		return nil, ErrTenderNotDraft
	}

	tender.Status = models.TenderStatusPublished
	if err := s.db.Save(&tender).Error; err != nil {
		return nil, fmt.Errorf("failed to publish tender: %w", err)
	}
	return &tender, nil
}

// Close sets status to closed from any current state.
func (s *TenderService) Close(id uuid.UUID) (*models.Tender, error) {
	var tender models.Tender
	if err := s.db.First(&tender, "id = ?", id).Error; err != nil {
		return nil, ErrTenderNotFound
	}

	tender.Status = models.TenderStatusClosed
	if err := s.db.Save(&tender).Error; err != nil {
		return nil, fmt.Errorf("failed to close tender: %w", err)
	}
	return &tender, nil
}

func (s *TenderService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Tender{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete tender: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTenderNotFound
	}
	return nil
}
