package database

import (
	"database/sql"
	"fmt"
	"math"

	"finch/internal/api/dto"
	"finch/internal/domain"
)

// SaveApplication appends one scored application. Failures surface to the
// caller; nothing here retries or swallows.
func SaveApplication(app *domain.Application) error {
	if err := DB.Create(app).Error; err != nil {
		return fmt.Errorf("database: save application: %w", err)
	}
	return nil
}

// GetStatistics recomputes the dashboard aggregates from scratch on every
// call. There is deliberately no cache in front of this.
func GetStatistics() (dto.Statistics, error) {
	stats := dto.Statistics{
		ByCategory: []dto.CategoryCount{},
		Recent:     []dto.RecentApplication{},
	}

	if err := DB.Model(&domain.Application{}).Count(&stats.Total).Error; err != nil {
		return stats, fmt.Errorf("database: count applications: %w", err)
	}

	if err := DB.Model(&domain.Application{}).
		Where("decision = ?", domain.DecisionApproved).
		Count(&stats.Approved).Error; err != nil {
		return stats, fmt.Errorf("database: count approved: %w", err)
	}

	if err := DB.Model(&domain.Application{}).
		Where("decision = ?", domain.DecisionRejected).
		Count(&stats.Rejected).Error; err != nil {
		return stats, fmt.Errorf("database: count rejected: %w", err)
	}

	var avgScore sql.NullFloat64 // NULL on an empty table
	if err := DB.Model(&domain.Application{}).
		Select("AVG(credit_score)").
		Scan(&avgScore).Error; err != nil {
		return stats, fmt.Errorf("database: average credit score: %w", err)
	}
	if avgScore.Valid {
		stats.AvgScore = math.Round(avgScore.Float64*100) / 100
	}

	if err := DB.Model(&domain.Application{}).
		Select("credit_category, COUNT(*) AS count").
		Group("credit_category").
		Scan(&stats.ByCategory).Error; err != nil {
		return stats, fmt.Errorf("database: count by category: %w", err)
	}

	if err := DB.Model(&domain.Application{}).
		Select("name, credit_score, decision, created_at").
		Order("created_at DESC, id DESC").
		Limit(10).
		Scan(&stats.Recent).Error; err != nil {
		return stats, fmt.Errorf("database: recent applications: %w", err)
	}

	// Scan can leave a slice nil when there are no rows; the payload
	// contract is an empty list, not null.
	if stats.ByCategory == nil {
		stats.ByCategory = []dto.CategoryCount{}
	}
	if stats.Recent == nil {
		stats.Recent = []dto.RecentApplication{}
	}

	return stats, nil
}

// GetAllApplications returns the 100 most recent rows, newest first.
func GetAllApplications() ([]domain.Application, error) {
	var applications []domain.Application
	if err := DB.Order("created_at DESC, id DESC").
		Limit(100).
		Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("database: load applications: %w", err)
	}
	return applications, nil
}
