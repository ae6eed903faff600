package services

import (
	"errors"

	"gorm.io/gorm"

	"matchday/models"
)

type VenueService struct {
	db *gorm.DB
}

func NewVenueService(db *gorm.DB) *VenueService {
	return &VenueService{db: db}
}

type VenueCreateInput struct {
	Name     string `json:"name" validate:"required,max=150"`
	Location string `json:"location" validate:"omitempty,max=200"`
}

type VenueUpdateInput struct {
	Name     *string `json:"name" validate:"omitempty,max=150"`
	Location *string `json:"location" validate:"omitempty,max=200"`
}

func (s *VenueService) List() ([]models.Venue, error) {
	var venues []models.Venue
	err := s.db.Preload("Fixtures").Order("name asc").Find(&venues).Error
	return venues, translate(err)
}

func (s *VenueService) GetByID(id uint) (*models.Venue, error) {
	var venue models.Venue
	err := s.db.Preload("Fixtures").First(&venue, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("venue")
	}
	if err != nil {
		return nil, translate(err)
	}
	return &venue, nil
}

func (s *VenueService) Create(in VenueCreateInput) (*models.Venue, error) {
	venue := models.Venue{Name: in.Name, Location: in.Location}
	if err := s.db.Create(&venue).Error; err != nil {
		return nil, translate(err)
	}
	return &venue, nil
}

func (s *VenueService) Update(id uint, in VenueUpdateInput) (*models.Venue, error) {
	var venue models.Venue
	if err := s.db.First(&venue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("venue")
		}
		return nil, translate(err)
	}

	if in.Name != nil {
		venue.Name = *in.Name
	}
	if in.Location != nil {
		venue.Location = *in.Location
	}

	if err := s.db.Save(&venue).Error; err != nil {
		return nil, translate(err)
	}
	return &venue, nil
}

func (s *VenueService) Delete(id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := s.db.First(&venue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("venue")
		}
		return nil, translate(err)
	}
	if err := s.db.Delete(&models.Venue{}, id).Error; err != nil {
		return nil, translate(err)
	}
	return &venue, nil
}
