package domain

import "time"

// Website represents a publisher's website that owns sellable articles.
type Website struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Article represents a single article on a website. Every article carries
// the brand it advertises; the brand join drives the competing-brands
// ranking.
type Article struct {
	ID        string
	WebsiteID string
	BrandID   string
	Title     string
	Sellable  bool
	CreatedAt time.Time
}

// Swit represents one unit of user activity posted on an article.
type Swit struct {
	ID        string
	OwnerID   string
	ArticleID string
	CreatedAt time.Time
}

// VoteSwit links a swit to a vote event. One vote event may be recorded
// against several swits (one per participating user), which is what makes
// "shares a vote" a meaningful relation between swits.
type VoteSwit struct {
	ID        string
	SwitID    string
	VoteID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Period is a closed date range for analytics queries.
type Period struct {
	StartDate time.Time
	EndDate   time.Time
}

// SeriesPoint is one day of a dashboard time series. Date is formatted as
// YYYY-MM-DD in the timezone the caller requested.
type SeriesPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// BrandCount is one entry of the competing-brands ranking.
type BrandCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
