package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"matchday/models"
)

type FixtureService struct {
	db *gorm.DB
}

func NewFixtureService(db *gorm.DB) *FixtureService {
	return &FixtureService{db: db}
}

type FixtureCreateInput struct {
	LeagueID   uint   `json:"league_id" validate:"required"`
	HomeTeamID uint   `json:"home_team_id" validate:"required"`
	AwayTeamID uint   `json:"away_team_id" validate:"required,nefield=HomeTeamID"`
	VenueID    *uint  `json:"venue_id"`
	RefereeID  *uint  `json:"referee_id"`
	MatchDate  string `json:"match_date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Status     string `json:"status" validate:"omitempty,oneof=SCHEDULED PLAYED POSTPONED CANCELLED"`
}

type FixtureUpdateInput struct {
	VenueID   *uint   `json:"venue_id"`
	RefereeID *uint   `json:"referee_id"`
	MatchDate *string `json:"match_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Status    *string `json:"status" validate:"omitempty,oneof=SCHEDULED PLAYED POSTPONED CANCELLED"`
}

func (s *FixtureService) List() ([]models.Fixture, error) {
	var fixtures []models.Fixture
	err := s.db.
		Preload("HomeTeam").
		Preload("AwayTeam").
		Preload("Venue").
		Preload("Referee").
		Preload("Result").
		Order("match_date asc").
		Find(&fixtures).Error
	return fixtures, translate(err)
}

func (s *FixtureService) ListByTeam(teamID uint) ([]models.Fixture, error) {
	var fixtures []models.Fixture
	err := s.db.
		Preload("HomeTeam").
		Preload("AwayTeam").
		Preload("Venue").
		Preload("Referee").
		Preload("Result").
		Where("home_team_id = ? OR away_team_id = ?", teamID, teamID).
		Order("match_date asc").
		Find(&fixtures).Error
	return fixtures, translate(err)
}

func (s *FixtureService) GetByID(id uint) (*models.Fixture, error) {
	var fixture models.Fixture
	err := s.db.
		Preload("HomeTeam").
		Preload("AwayTeam").
		Preload("Venue").
		Preload("Referee").
		Preload("Result").
		First(&fixture, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("fixture")
	}
	if err != nil {
		return nil, translate(err)
	}
	return &fixture, nil
}

func (s *FixtureService) Create(in FixtureCreateInput) (*models.Fixture, error) {
	if err := s.refsExist(in.LeagueID, []uint{in.HomeTeamID, in.AwayTeamID}, in.VenueID, in.RefereeID); err != nil {
		return nil, err
	}

	matchDate, err := time.Parse(time.RFC3339, in.MatchDate)
	if err != nil {
		return nil, invalid("match_date must be an RFC3339 timestamp")
	}

	status := in.Status
	if status == "" {
		status = "SCHEDULED"
	}

	fixture := models.Fixture{
		LeagueID:   in.LeagueID,
		HomeTeamID: in.HomeTeamID,
		AwayTeamID: in.AwayTeamID,
		VenueID:    in.VenueID,
		RefereeID:  in.RefereeID,
		MatchDate:  matchDate,
		Status:     status,
	}
	if err := s.db.Create(&fixture).Error; err != nil {
		return nil, translate(err)
	}
	return s.GetByID(fixture.ID)
}

func (s *FixtureService) Update(id uint, in FixtureUpdateInput) (*models.Fixture, error) {
	var fixture models.Fixture
	if err := s.db.First(&fixture, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("fixture")
		}
		return nil, translate(err)
	}

	if err := s.refsExist(0, nil, in.VenueID, in.RefereeID); err != nil {
		return nil, err
	}

	if in.VenueID != nil {
		fixture.VenueID = in.VenueID
	}
	if in.RefereeID != nil {
		fixture.RefereeID = in.RefereeID
	}
	if in.MatchDate != nil {
		matchDate, err := time.Parse(time.RFC3339, *in.MatchDate)
		if err != nil {
			return nil, invalid("match_date must be an RFC3339 timestamp")
		}
		fixture.MatchDate = matchDate
	}
	if in.Status != nil {
		fixture.Status = *in.Status
	}

	if err := s.db.Save(&fixture).Error; err != nil {
		return nil, translate(err)
	}
	return s.GetByID(fixture.ID)
}

func (s *FixtureService) Delete(id uint) (*models.Fixture, error) {
	var fixture models.Fixture
	if err := s.db.First(&fixture, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("fixture")
		}
		return nil, translate(err)
	}
	if err := s.db.Delete(&models.Fixture{}, id).Error; err != nil {
		return nil, translate(err)
	}
	return &fixture, nil
}

func (s *FixtureService) refsExist(leagueID uint, teamIDs []uint, venueID, refereeID *uint) error {
	if leagueID != 0 {
		var count int64
		if err := s.db.Model(&models.League{}).Where("id = ?", leagueID).Count(&count).Error; err != nil {
			return translate(err)
		}
		if count == 0 {
			return invalidRef("league %d does not exist", leagueID)
		}
	}
	for _, teamID := range teamIDs {
		var count int64
		if err := s.db.Model(&models.Team{}).Where("id = ?", teamID).Count(&count).Error; err != nil {
			return translate(err)
		}
		if count == 0 {
			return invalidRef("team %d does not exist", teamID)
		}
	}
	if venueID != nil {
		var count int64
		if err := s.db.Model(&models.Venue{}).Where("id = ?", *venueID).Count(&count).Error; err != nil {
			return translate(err)
		}
		if count == 0 {
			return invalidRef("venue %d does not exist", *venueID)
		}
	}
	if refereeID != nil {
		var count int64
		if err := s.db.Model(&models.Referee{}).Where("id = ?", *refereeID).Count(&count).Error; err != nil {
			return translate(err)
		}
		if count == 0 {
			return invalidRef("referee %d does not exist", *refereeID)
		}
	}
	return nil
}
