package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/campushub/internal/repository"
)

func newTestForms() *FormValidator {
	return NewFormValidator(validator.New())
}

func newTestNotifications() *NotificationService {
	return NewNotificationService(0, nil, nil, nil)
}

func newFixtures() *repository.FixtureRepository {
	return repository.NewFixtureRepository()
}
