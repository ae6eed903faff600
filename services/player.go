package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"matchday/models"
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{db: db}
}

type PlayerCreateInput struct {
	FirstName    string `json:"first_name" validate:"required,max=100"`
	LastName     string `json:"last_name" validate:"required,max=100"`
	Position     string `json:"position" validate:"omitempty,max=50"`
	DateOfBirth  string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	JerseyNumber *int   `json:"jersey_number" validate:"omitempty,min=0"`
	TeamID       uint   `json:"team_id" validate:"required"`
}

type PlayerUpdateInput struct {
	FirstName    *string `json:"first_name" validate:"omitempty,max=100"`
	LastName     *string `json:"last_name" validate:"omitempty,max=100"`
	Position     *string `json:"position" validate:"omitempty,max=50"`
	DateOfBirth  *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	JerseyNumber *int    `json:"jersey_number" validate:"omitempty,min=0"`
	TeamID       *uint   `json:"team_id"`
}

func (s *PlayerService) List() ([]models.Player, error) {
	var players []models.Player
	err := s.db.
		Preload("Team").
		Order("first_name asc").
		Find(&players).Error
	return players, translate(err)
}

// ListByTeam returns the team roster ordered by jersey number ascending.
func (s *PlayerService) ListByTeam(teamID uint) ([]models.Player, error) {
	var players []models.Player
	err := s.db.
		Preload("Team").
		Where("team_id = ?", teamID).
		Order("jersey_number asc").
		Find(&players).Error
	return players, translate(err)
}

func (s *PlayerService) GetByID(id uint) (*models.Player, error) {
	var player models.Player
	err := s.db.Preload("Team").First(&player, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("player")
	}
	if err != nil {
		return nil, translate(err)
	}
	return &player, nil
}

func (s *PlayerService) Create(in PlayerCreateInput) (*models.Player, error) {
	if err := s.teamExists(in.TeamID); err != nil {
		return nil, err
	}

	dob, err := parseDate(in.DateOfBirth)
	if err != nil {
		return nil, err
	}

	player := models.Player{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Position:     in.Position,
		DateOfBirth:  dob,
		JerseyNumber: in.JerseyNumber,
		TeamID:       in.TeamID,
	}
	if err := s.db.Create(&player).Error; err != nil {
		return nil, translate(err)
	}
	return s.GetByID(player.ID)
}

func (s *PlayerService) Update(id uint, in PlayerUpdateInput) (*models.Player, error) {
	var player models.Player
	if err := s.db.First(&player, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("player")
		}
		return nil, translate(err)
	}

	if in.TeamID != nil && *in.TeamID != player.TeamID {
		if err := s.teamExists(*in.TeamID); err != nil {
			return nil, err
		}
		player.TeamID = *in.TeamID
	}
	if in.FirstName != nil {
		player.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		player.LastName = *in.LastName
	}
	if in.Position != nil {
		player.Position = *in.Position
	}
	if in.DateOfBirth != nil {
		dob, err := parseDate(*in.DateOfBirth)
		if err != nil {
			return nil, err
		}
		player.DateOfBirth = dob
	}
	if in.JerseyNumber != nil {
		player.JerseyNumber = in.JerseyNumber
	}

	if err := s.db.Save(&player).Error; err != nil {
		return nil, translate(err)
	}
	return s.GetByID(player.ID)
}

func (s *PlayerService) Delete(id uint) (*models.Player, error) {
	var player models.Player
	if err := s.db.First(&player, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("player")
		}
		return nil, translate(err)
	}
	if err := s.db.Delete(&models.Player{}, id).Error; err != nil {
		return nil, translate(err)
	}
	return &player, nil
}

func (s *PlayerService) teamExists(id uint) error {
	var count int64
	if err := s.db.Model(&models.Team{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return translate(err)
	}
	if count == 0 {
		return invalidRef("team %d does not exist", id)
	}
	return nil
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, invalid("date must match the format 2006-01-02")
	}
	return &t, nil
}
