package services

import (
	"errors"

	"gorm.io/gorm"

	"matchday/models"
)

type ResultService struct {
	db *gorm.DB
}

func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{db: db}
}

type ResultCreateInput struct {
	FixtureID uint `json:"fixture_id" validate:"required"`
	HomeScore int  `json:"home_score" validate:"min=0"`
	AwayScore int  `json:"away_score" validate:"min=0"`
}

type ResultUpdateInput struct {
	HomeScore *int `json:"home_score" validate:"omitempty,min=0"`
	AwayScore *int `json:"away_score" validate:"omitempty,min=0"`
}

func (s *ResultService) List() ([]models.Result, error) {
	var results []models.Result
	err := s.db.
		Preload("Fixture.HomeTeam").
		Preload("Fixture.AwayTeam").
		Order("created_at desc").
		Find(&results).Error
	return results, translate(err)
}

func (s *ResultService) GetByID(id uint) (*models.Result, error) {
	var result models.Result
	err := s.db.
		Preload("Fixture.HomeTeam").
		Preload("Fixture.AwayTeam").
		First(&result, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("result")
	}
	if err != nil {
		return nil, translate(err)
	}
	return &result, nil
}

func (s *ResultService) Create(in ResultCreateInput) (*models.Result, error) {
	var count int64
	if err := s.db.Model(&models.Fixture{}).Where("id = ?", in.FixtureID).Count(&count).Error; err != nil {
		return nil, translate(err)
	}
	if count == 0 {
		return nil, invalidRef("fixture %d does not exist", in.FixtureID)
	}
	if err := s.db.Model(&models.Result{}).Where("fixture_id = ?", in.FixtureID).Count(&count).Error; err != nil {
		return nil, translate(err)
	}
	if count > 0 {
		return nil, duplicate("result for this fixture")
	}

	result := models.Result{
		FixtureID: in.FixtureID,
		HomeScore: in.HomeScore,
		AwayScore: in.AwayScore,
	}
	if err := s.db.Create(&result).Error; err != nil {
		return nil, translate(err)
	}
	return s.GetByID(result.ID)
}

func (s *ResultService) Update(id uint, in ResultUpdateInput) (*models.Result, error) {
	var result models.Result
	if err := s.db.First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("result")
		}
		return nil, translate(err)
	}

	if in.HomeScore != nil {
		result.HomeScore = *in.HomeScore
	}
	if in.AwayScore != nil {
		result.AwayScore = *in.AwayScore
	}

	if err := s.db.Save(&result).Error; err != nil {
		return nil, translate(err)
	}
	return s.GetByID(result.ID)
}

func (s *ResultService) Delete(id uint) (*models.Result, error) {
	var result models.Result
	if err := s.db.First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("result")
		}
		return nil, translate(err)
	}
	if err := s.db.Delete(&models.Result{}, id).Error; err != nil {
		return nil, translate(err)
	}
	return &result, nil
}
