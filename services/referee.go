package services

import (
	"errors"

	"gorm.io/gorm"

	"matchday/models"
)

type RefereeService struct {
	db *gorm.DB
}

func NewRefereeService(db *gorm.DB) *RefereeService {
	return &RefereeService{db: db}
}

type RefereeCreateInput struct {
	FullName           string `json:"full_name" validate:"required,max=150"`
	CertificationLevel string `json:"certification_level" validate:"omitempty,max=50"`
}

type RefereeUpdateInput struct {
	FullName           *string `json:"full_name" validate:"omitempty,max=150"`
	CertificationLevel *string `json:"certification_level" validate:"omitempty,max=50"`
}

func (s *RefereeService) List() ([]models.Referee, error) {
	var referees []models.Referee
	err := s.db.Preload("Fixtures").Order("full_name asc").Find(&referees).Error
	return referees, translate(err)
}

func (s *RefereeService) GetByID(id uint) (*models.Referee, error) {
	var referee models.Referee
	err := s.db.Preload("Fixtures").First(&referee, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("referee")
	}
	if err != nil {
		return nil, translate(err)
	}
	return &referee, nil
}

func (s *RefereeService) Create(in RefereeCreateInput) (*models.Referee, error) {
	referee := models.Referee{
		FullName:           in.FullName,
		CertificationLevel: in.CertificationLevel,
	}
	if err := s.db.Create(&referee).Error; err != nil {
		return nil, translate(err)
	}
	return &referee, nil
}

func (s *RefereeService) Update(id uint, in RefereeUpdateInput) (*models.Referee, error) {
	var referee models.Referee
	if err := s.db.First(&referee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("referee")
		}
		return nil, translate(err)
	}

	if in.FullName != nil {
		referee.FullName = *in.FullName
	}
	if in.CertificationLevel != nil {
		referee.CertificationLevel = *in.CertificationLevel
	}

	if err := s.db.Save(&referee).Error; err != nil {
		return nil, translate(err)
	}
	return &referee, nil
}

func (s *RefereeService) Delete(id uint) (*models.Referee, error) {
	var referee models.Referee
	if err := s.db.First(&referee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("referee")
		}
		return nil, translate(err)
	}
	if err := s.db.Delete(&models.Referee{}, id).Error; err != nil {
		return nil, translate(err)
	}
	return &referee, nil
}
