package models

import "time"

type User struct {
	ID                 uint      `gorm:"primaryKey"`
	Email              string    `gorm:"uniqueIndex;not null"`
	PasswordHash       string    `gorm:"not null"`
	DisplayName        string    `gorm:"not null;default:''"`
	Interests          []string  `gorm:"serializer:json"`
	OnboardingComplete bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time `gorm:"not null"`
}

// InterestCatalog is the closed set of interests offered during onboarding.
func InterestCatalog() []string {
	return []string{
		"Self Improvement",
		"Business",
		"Health & Fitness",
		"Mindfulness",
		"Productivity",
		"Learning",
		"Creativity",
		"Relationships",
		"Finance",
		"Mental Health",
	}
}
