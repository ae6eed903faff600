package services

import (
	"errors"

	"gorm.io/gorm"

	"matchday/models"
	"matchday/utils"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type UserCreateInput struct {
	FirstName string          `json:"first_name" validate:"required,max=100"`
	LastName  string          `json:"last_name" validate:"required,max=100"`
	Email     string          `json:"email" validate:"required,email"`
	Phone     string          `json:"phone" validate:"omitempty,max=30"`
	Password  string          `json:"password" validate:"required,min=8"`
	Role      models.UserRole `json:"role" validate:"omitempty,oneof=ADMIN COACH"`
}

type UserUpdateInput struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	Password  *string `json:"password" validate:"omitempty,min=8"`
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at asc").Find(&users).Error
	return users, translate(err)
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("user")
	}
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("user")
	}
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Create registers a login account. The role defaults to COACH.
func (s *UserService) Create(in UserCreateInput) (*models.User, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
		return nil, translate(err)
	}
	if count > 0 {
		return nil, duplicate("user with this email")
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = models.RoleCoach
	}

	user := models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Password:  hashed,
		Role:      role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Update merges the payload over the account. For coach accounts the email
// and password copies on the paired coach profile follow in the same
// transaction, mirroring the coach-side sync.
func (s *UserService) Update(id uint, in UserUpdateInput) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user")
		}
		return nil, translate(err)
	}

	previousEmail := user.Email
	emailChanged := in.Email != nil && *in.Email != user.Email
	if emailChanged {
		var count int64
		if err := s.db.Model(&models.User{}).
			Where("email = ? AND id <> ?", *in.Email, id).
			Count(&count).Error; err != nil {
			return nil, translate(err)
		}
		if count > 0 {
			return nil, duplicate("user with this email")
		}
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Password != nil {
		hashed, err := utils.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&user).Error; err != nil {
			return translate(err)
		}
		if user.Role == models.RoleCoach && (emailChanged || in.Password != nil) {
			updates := map[string]interface{}{}
			if emailChanged {
				updates["email"] = user.Email
			}
			if in.Password != nil {
				updates["password"] = user.Password
			}
			if err := tx.Model(&models.Coach{}).
				Where("email = ?", previousEmail).
				Updates(updates).Error; err != nil {
				return translate(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword verifies the current password and re-hashes the new one.
// For coach accounts the hashed copy on the coach profile is updated in the
// same transaction so the two rows never diverge.
func (s *UserService) ChangePassword(id uint, current, newPassword string) error {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("user")
		}
		return translate(err)
	}

	if !utils.CheckPassword(user.Password, current) {
		return invalid("current password is incorrect")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("password", hashed).Error; err != nil {
			return translate(err)
		}
		if user.Role == models.RoleCoach {
			if err := tx.Model(&models.Coach{}).
				Where("email = ?", user.Email).
				Update("password", hashed).Error; err != nil {
				return translate(err)
			}
		}
		return nil
	})
}

func (s *UserService) Delete(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user")
		}
		return nil, translate(err)
	}
	if err := s.db.Delete(&models.User{}, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
