package services

import (
	"errors"

	"gorm.io/gorm"

	"matchday/models"
)

type LeagueService struct {
	db *gorm.DB
}

func NewLeagueService(db *gorm.DB) *LeagueService {
	return &LeagueService{db: db}
}

type LeagueCreateInput struct {
	Name   string `json:"name" validate:"required,max=100"`
	Season string `json:"season" validate:"omitempty,max=50"`
}

type LeagueUpdateInput struct {
	Name   *string `json:"name" validate:"omitempty,max=100"`
	Season *string `json:"season" validate:"omitempty,max=50"`
}

func (s *LeagueService) List() ([]models.League, error) {
	var leagues []models.League
	err := s.db.Preload("Teams").Order("name asc").Find(&leagues).Error
	return leagues, translate(err)
}

func (s *LeagueService) GetByID(id uint) (*models.League, error) {
	var league models.League
	err := s.db.Preload("Teams").First(&league, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("league")
	}
	if err != nil {
		return nil, translate(err)
	}
	return &league, nil
}

func (s *LeagueService) Create(in LeagueCreateInput) (*models.League, error) {
	var count int64
	if err := s.db.Model(&models.League{}).Where("name = ?", in.Name).Count(&count).Error; err != nil {
		return nil, translate(err)
	}
	if count > 0 {
		return nil, duplicate("league with this name")
	}

	league := models.League{Name: in.Name, Season: in.Season}
	if err := s.db.Create(&league).Error; err != nil {
		return nil, translate(err)
	}
	return &league, nil
}

func (s *LeagueService) Update(id uint, in LeagueUpdateInput) (*models.League, error) {
	var league models.League
	if err := s.db.First(&league, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("league")
		}
		return nil, translate(err)
	}

	if in.Name != nil && *in.Name != league.Name {
		var count int64
		if err := s.db.Model(&models.League{}).
			Where("name = ? AND id <> ?", *in.Name, id).
			Count(&count).Error; err != nil {
			return nil, translate(err)
		}
		if count > 0 {
			return nil, duplicate("league with this name")
		}
		league.Name = *in.Name
	}
	if in.Season != nil {
		league.Season = *in.Season
	}

	if err := s.db.Save(&league).Error; err != nil {
		return nil, translate(err)
	}
	return &league, nil
}

func (s *LeagueService) Delete(id uint) (*models.League, error) {
	var league models.League
	if err := s.db.First(&league, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("league")
		}
		return nil, translate(err)
	}
	if err := s.db.Delete(&models.League{}, id).Error; err != nil {
		return nil, translate(err)
	}
	return &league, nil
}
