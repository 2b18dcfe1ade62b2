package schema

// SocialCheckinTable represents the 'social.checkin' table
type SocialCheckinTable struct {
	Table     string
	ID        string
	BeachID   string
	UserID    string
	Note      string
	CreatedAt string
}

// SocialCheckin is the schema definition for social.checkin
var SocialCheckin = SocialCheckinTable{
	Table:     "social.checkin",
	ID:        "id",
	BeachID:   "beachid",
	UserID:    "userid",
	Note:      "note",
	CreatedAt: "createdat",
}

func (t SocialCheckinTable) Columns() []string {
	return []string{t.ID, t.BeachID, t.UserID, t.Note, t.CreatedAt}
}
