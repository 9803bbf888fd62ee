package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/shutterclub/photocontest/internal/pkg/constants"
)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}
	return string(hash), nil
}

func ValidatePassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return constants.ErrUnauthorized
	}
	return nil
}
