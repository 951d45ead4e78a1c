package controllers

import (
	"errors"

	"github.com/JahvoL/mall-end/models"
	"github.com/JahvoL/mall-end/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateSampleUser seeds a demo shopper on a fresh database so the
// token resolver has a row to find before the auth service has
// registered anyone. The password is only used by the auth service;
// it is stored hashed all the same.
func CreateSampleUser(db *gorm.DB) error {
	var existing models.User
	err := db.Where("username = ?", "demo").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Username: "demo",
		Password: string(hashed),
		Nickname: "演示用户",
		Role:     "USER",
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	utils.LogInfo("Sample user created with ID: %d", user.ID)
	return nil
}
