package schema

// SocialReviewTable represents the 'social.review' table
type SocialReviewTable struct {
	Table     string
	ID        string
	BeachID   string
	UserID    string
	Rating    string
	Title     string
	Body      string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// SocialReview is the schema definition for social.review
var SocialReview = SocialReviewTable{
	Table:     "social.review",
	ID:        "id",
	BeachID:   "beachid",
	UserID:    "userid",
	Rating:    "rating",
	Title:     "title",
	Body:      "body",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	DeletedAt: "deletedat",
}

// Columns returns all standard column names
func (t SocialReviewTable) Columns() []string {
	return []string{
		t.ID, t.BeachID, t.UserID, t.Rating, t.Title, t.Body,
		t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
