package repository

import (
	"ReportDeskAPI/internal/adapter"

	"gorm.io/gorm"
)

type Repository struct {
	User      *UserRepository
	Report    *ReportRepository
	RateLimit *RateLimitRepository
}

func NewRepository(db *gorm.DB, redisAdapter *adapter.RedisAdapter) *Repository {
	return &Repository{
		User:      NewUserRepository(db),
		Report:    NewReportRepository(db),
		RateLimit: NewRateLimitRepository(redisAdapter),
	}
}
