package services

import (
	"errors"

	"campus-dining-api/models"

	"gorm.io/gorm"
)

var defaultContact = models.ContactInfo{
	Email:   "support@cumeal.app",
	Phone:   "+91 98765 43210",
	Address: "Christ University, Bengaluru, Karnataka",
}

// GetContactInfo returns the contact singleton, creating it with
// defaults on first read. The record uses a fixed primary key, so a
// concurrent first-create race leaves one winner; the loser sees a
// duplicate-key error and retries as a plain read.
func GetContactInfo(db *gorm.DB) (*models.ContactInfo, error) {
	var info models.ContactInfo
	err := db.First(&info).Error
	if err == nil {
		return &info, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := defaultContact
	if err := db.Create(&created).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := db.First(&info).Error; err != nil {
				return nil, err
			}
			return &info, nil
		}
		return nil, err
	}
	return &created, nil
}

// UpsertContactInfo overwrites the singleton's fields, creating the
// record if it does not exist yet.
func UpsertContactInfo(db *gorm.DB, email, phone, address string) (*models.ContactInfo, error) {
	var info models.ContactInfo
	err := db.First(&info).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		info = models.ContactInfo{Email: email, Phone: phone, Address: address}
		if err := db.Create(&info).Error; err != nil {
			return nil, err
		}
		return &info, nil
	}
	info.Email = email
	info.Phone = phone
	info.Address = address
	if err := db.Save(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}
