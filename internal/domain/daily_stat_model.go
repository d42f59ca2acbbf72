package domain

import "time"

// DailyStat is part of the persisted layout but nothing populates or reads
// it yet; the table is migrated alongside applications and left inert.
type DailyStat struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Date              time.Time `gorm:"uniqueIndex;type:date" json:"date"`
	TotalApplications int       `json:"total_applications"`
	Approved          int       `json:"approved"`
	Rejected          int       `json:"rejected"`
	AvgCreditScore    float64   `json:"avg_credit_score"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (DailyStat) TableName() string { return "daily_stats" }
