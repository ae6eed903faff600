package services

import (
	"errors"

	"gorm.io/gorm"

	"matchday/models"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

type TeamCreateInput struct {
	Name       string `json:"name" validate:"required,max=100"`
	HomeGround string `json:"home_ground" validate:"omitempty,max=200"`
	LeagueID   uint   `json:"league_id" validate:"required"`
}

type TeamUpdateInput struct {
	Name       *string `json:"name" validate:"omitempty,max=100"`
	HomeGround *string `json:"home_ground" validate:"omitempty,max=200"`
	LeagueID   *uint   `json:"league_id"`
}

func (s *TeamService) List() ([]models.Team, error) {
	var teams []models.Team
	err := s.db.
		Preload("League").
		Preload("Players").
		Preload("HomeFixtures").
		Preload("AwayFixtures").
		Order("name asc").
		Find(&teams).Error
	return teams, translate(err)
}

func (s *TeamService) ListByLeague(leagueID uint) ([]models.Team, error) {
	var teams []models.Team
	err := s.db.
		Preload("League").
		Preload("Players").
		Where("league_id = ?", leagueID).
		Order("name asc").
		Find(&teams).Error
	return teams, translate(err)
}

func (s *TeamService) GetByID(id uint) (*models.Team, error) {
	var team models.Team
	err := s.db.
		Preload("League").
		Preload("Players").
		Preload("HomeFixtures").
		Preload("AwayFixtures").
		First(&team, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("team")
	}
	if err != nil {
		return nil, translate(err)
	}
	return &team, nil
}

func (s *TeamService) Create(in TeamCreateInput) (*models.Team, error) {
	if err := s.leagueExists(in.LeagueID); err != nil {
		return nil, err
	}

	team := models.Team{
		Name:       in.Name,
		HomeGround: in.HomeGround,
		LeagueID:   in.LeagueID,
	}
	if err := s.db.Create(&team).Error; err != nil {
		return nil, translate(err)
	}
	return s.GetByID(team.ID)
}

func (s *TeamService) Update(id uint, in TeamUpdateInput) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("team")
		}
		return nil, translate(err)
	}

	if in.LeagueID != nil && *in.LeagueID != team.LeagueID {
		if err := s.leagueExists(*in.LeagueID); err != nil {
			return nil, err
		}
		team.LeagueID = *in.LeagueID
	}
	if in.Name != nil {
		team.Name = *in.Name
	}
	if in.HomeGround != nil {
		team.HomeGround = *in.HomeGround
	}

	if err := s.db.Save(&team).Error; err != nil {
		return nil, translate(err)
	}
	return s.GetByID(team.ID)
}

// Delete removes the team and returns the deleted snapshot.
func (s *TeamService) Delete(id uint) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("team")
		}
		return nil, translate(err)
	}
	if err := s.db.Delete(&models.Team{}, id).Error; err != nil {
		return nil, translate(err)
	}
	return &team, nil
}

func (s *TeamService) leagueExists(id uint) error {
	var count int64
	if err := s.db.Model(&models.League{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return translate(err)
	}
	if count == 0 {
		return invalidRef("league %d does not exist", id)
	}
	return nil
}
