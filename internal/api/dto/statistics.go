package dto

import "time"

type CategoryCount struct {
	CreditCategory string `json:"credit_category"`
	Count          int64  `json:"count"`
}

type RecentApplication struct {
	Name        string    `json:"name"`
	CreditScore int       `json:"credit_score"`
	Decision    string    `json:"decision"`
	CreatedAt   time.Time `json:"created_at"`
}

// Statistics is the aggregate payload behind both the admin dashboard and
// the /api/stats endpoint. Always computed fresh from the store.
type Statistics struct {
	Total      int64               `json:"total"`
	Approved   int64               `json:"approved"`
	Rejected   int64               `json:"rejected"`
	AvgScore   float64             `json:"avg_score"`
	ByCategory []CategoryCount     `json:"by_category"`
	Recent     []RecentApplication `json:"recent"`
}
