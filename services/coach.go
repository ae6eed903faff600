package services

import (
	"errors"

	"github.com/badoux/checkmail"
	"gorm.io/gorm"

	"matchday/models"
	"matchday/utils"
)

// CoachService owns the coach profiles and the account-sync transaction that
// keeps each profile's login User consistent with it. Every mutation that
// touches both tables runs inside a single transaction: a User without its
// Coach (or vice versa) is never persisted.
type CoachService struct {
	db *gorm.DB
}

func NewCoachService(db *gorm.DB) *CoachService {
	return &CoachService{db: db}
}

type CoachCreateInput struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"required,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=8"`
	TeamID    *uint   `json:"team_id"`
}

type CoachUpdateInput struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=8"`
	TeamID    *uint   `json:"team_id"`
}

// CoachDashboard is the coach self-lookup payload: the profile, its team and
// the team roster.
type CoachDashboard struct {
	Coach   *models.Coach   `json:"coach"`
	Team    *models.Team    `json:"team,omitempty"`
	Players []models.Player `json:"players"`
}

func (s *CoachService) List() ([]models.Coach, error) {
	var coaches []models.Coach
	err := s.db.
		Preload("Team.League").
		Order("created_at desc").
		Find(&coaches).Error
	return coaches, translate(err)
}

func (s *CoachService) ListByTeam(teamID uint) ([]models.Coach, error) {
	var coaches []models.Coach
	err := s.db.
		Preload("Team.League").
		Where("team_id = ?", teamID).
		Order("created_at desc").
		Find(&coaches).Error
	return coaches, translate(err)
}

func (s *CoachService) GetByID(id uint) (*models.Coach, error) {
	var coach models.Coach
	err := s.db.Preload("Team.League").First(&coach, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("coach")
	}
	if err != nil {
		return nil, translate(err)
	}
	return &coach, nil
}

// GetByEmail resolves the coach profile paired with a login account. Used by
// the principal resolver.
func (s *CoachService) GetByEmail(email string) (*models.Coach, error) {
	var coach models.Coach
	err := s.db.Where("email = ?", email).First(&coach).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("coach")
	}
	if err != nil {
		return nil, translate(err)
	}
	return &coach, nil
}

// Create inserts a coach profile. When both email and password are supplied
// it also provisions a COACH login account sharing the same email and bcrypt
// hash, atomically with the profile row.
func (s *CoachService) Create(in CoachCreateInput) (*models.Coach, error) {
	if in.TeamID != nil {
		if err := s.teamExists(*in.TeamID); err != nil {
			return nil, err
		}
	}
	if in.Password != nil && in.Email == nil {
		return nil, invalid("email is required when provisioning a login")
	}

	if in.Email != nil {
		if err := checkmail.ValidateFormat(*in.Email); err != nil {
			return nil, invalid("email must be a valid address")
		}
		var count int64
		if err := s.db.Model(&models.Coach{}).Where("email = ?", *in.Email).Count(&count).Error; err != nil {
			return nil, translate(err)
		}
		if count > 0 {
			return nil, duplicate("coach with this email")
		}
	}

	provisionLogin := in.Email != nil && in.Password != nil
	var hashed string
	if provisionLogin {
		var count int64
		if err := s.db.Model(&models.User{}).Where("email = ?", *in.Email).Count(&count).Error; err != nil {
			return nil, translate(err)
		}
		if count > 0 {
			return nil, duplicate("user with this email")
		}

		var err error
		hashed, err = utils.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
	}

	coach := models.Coach{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		TeamID:    in.TeamID,
	}
	if provisionLogin {
		coach.Password = &hashed
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if provisionLogin {
			user := models.User{
				FirstName: in.FirstName,
				LastName:  in.LastName,
				Email:     *in.Email,
				Password:  hashed,
				Role:      models.RoleCoach,
			}
			if err := tx.Create(&user).Error; err != nil {
				return translate(err)
			}
		}
		if err := tx.Create(&coach).Error; err != nil {
			return translate(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(coach.ID)
}

// Update merges the payload over the coach profile and keeps the linked
// login account in sync. The write always runs in a transaction; when no
// credential field changed it trivially commits the single profile row.
func (s *CoachService) Update(id uint, in CoachUpdateInput) (*models.Coach, error) {
	var coach models.Coach
	if err := s.db.First(&coach, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("coach")
		}
		return nil, translate(err)
	}

	if in.TeamID != nil {
		if err := s.teamExists(*in.TeamID); err != nil {
			return nil, err
		}
	}

	emailChanged := in.Email != nil && (coach.Email == nil || *in.Email != *coach.Email)
	if emailChanged {
		if err := checkmail.ValidateFormat(*in.Email); err != nil {
			return nil, invalid("email must be a valid address")
		}
		var count int64
		if err := s.db.Model(&models.Coach{}).
			Where("email = ? AND id <> ?", *in.Email, coach.ID).
			Count(&count).Error; err != nil {
			return nil, translate(err)
		}
		if count > 0 {
			return nil, duplicate("coach with this email")
		}
		if err := s.db.Model(&models.User{}).Where("email = ?", *in.Email).Count(&count).Error; err != nil {
			return nil, translate(err)
		}
		if count > 0 {
			return nil, duplicate("user with this email")
		}
	}

	// Plaintext is hashed exactly once, before any row is written.
	var hashed *string
	if in.Password != nil {
		h, err := utils.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		hashed = &h
	}

	previousEmail := coach.Email
	credentialsTouched := emailChanged || hashed != nil || in.FirstName != nil || in.LastName != nil

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if credentialsTouched {
			// A coach created without an email has no login to look up; that
			// is the same "no linked login" case as a lookup miss.
			var user models.User
			err := gorm.ErrRecordNotFound
			if previousEmail != nil {
				err = tx.Where("email = ?", *previousEmail).First(&user).Error
			}
			switch {
			case err == nil:
				if emailChanged {
					user.Email = *in.Email
				}
				if hashed != nil {
					user.Password = *hashed
				}
				if in.FirstName != nil {
					user.FirstName = *in.FirstName
				}
				if in.LastName != nil {
					user.LastName = *in.LastName
				}
				if err := tx.Save(&user).Error; err != nil {
					return translate(err)
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				// No linked login yet: create one when the update leaves the
				// coach with a full email+password pair.
				if in.Email != nil && hashed != nil {
					user := models.User{
						FirstName: coalesce(in.FirstName, coach.FirstName),
						LastName:  coalesce(in.LastName, coach.LastName),
						Email:     *in.Email,
						Password:  *hashed,
						Role:      models.RoleCoach,
					}
					if err := tx.Create(&user).Error; err != nil {
						return translate(err)
					}
				}
			default:
				return translate(err)
			}
		}

		if in.FirstName != nil {
			coach.FirstName = *in.FirstName
		}
		if in.LastName != nil {
			coach.LastName = *in.LastName
		}
		if in.Email != nil {
			coach.Email = in.Email
		}
		if hashed != nil {
			coach.Password = hashed
		}
		if in.TeamID != nil {
			// Changing a coach's team does not reassign any players.
			coach.TeamID = in.TeamID
		}
		if err := tx.Save(&coach).Error; err != nil {
			return translate(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(coach.ID)
}

// Delete removes the coach profile and, in the same transaction, the login
// account sharing its email. A missing login is not an error.
func (s *CoachService) Delete(id uint) (*models.Coach, error) {
	var coach models.Coach
	if err := s.db.First(&coach, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("coach")
		}
		return nil, translate(err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Coach{}, id).Error; err != nil {
			return translate(err)
		}
		if coach.Email != nil {
			if err := tx.Where("email = ?", *coach.Email).Delete(&models.User{}).Error; err != nil {
				return translate(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

// Dashboard assembles the coach self-view: profile, team and roster.
func (s *CoachService) Dashboard(coachID uint) (*CoachDashboard, error) {
	coach, err := s.GetByID(coachID)
	if err != nil {
		return nil, err
	}

	dashboard := &CoachDashboard{Coach: coach, Players: []models.Player{}}
	if coach.TeamID == nil {
		return dashboard, nil
	}

	dashboard.Team = coach.Team
	var players []models.Player
	if err := s.db.
		Where("team_id = ?", *coach.TeamID).
		Order("jersey_number asc").
		Find(&players).Error; err != nil {
		return nil, translate(err)
	}
	dashboard.Players = players
	return dashboard, nil
}

func (s *CoachService) teamExists(id uint) error {
	var count int64
	if err := s.db.Model(&models.Team{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return translate(err)
	}
	if count == 0 {
		return invalidRef("team %d does not exist", id)
	}
	return nil
}

func coalesce(override *string, fallback string) string {
	if override != nil {
		return *override
	}
	return fallback
}
