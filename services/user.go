package services

import (
	"errors"

	"campus-dining-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

// FindUserByPhone looks a user up by login phone, nil when absent
func FindUserByPhone(db *gorm.DB, phone string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// CreateUserInput is the full set of fields for a new account
type CreateUserInput struct {
	Name     string
	Phone    string
	Email    *string
	Password string
	Role     models.UserRole
	CampusID *string
}

// CreateUser hashes the password and inserts the account
func CreateUser(db *gorm.DB, in CreateUserInput) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CampusID:     in.CampusID,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all accounts
func ListUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.Find(&users).Error
	return users, err
}

// UserPatch carries mutable account fields; nil means leave unchanged
type UserPatch struct {
	Name     *string
	Phone    *string
	Email    *string
	Password *string
	Role     *models.UserRole
	CampusID *string
}

// UpdateUser applies a partial update, re-hashing on password change.
// Returns nil when the user is absent.
func UpdateUser(db *gorm.DB, id string, patch UserPatch) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Email != nil {
		user.Email = patch.Email
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.CampusID != nil {
		user.CampusID = patch.CampusID
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account, reporting whether it existed
func DeleteUser(db *gorm.DB, id string) (bool, error) {
	res := db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
