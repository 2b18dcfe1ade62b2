package schema

// UserFavoriteTable represents the 'users.favorite' junction table
type UserFavoriteTable struct {
	Table     string
	UserID    string
	BeachID   string
	CreatedAt string
}

// UserFavorite is the schema definition for users.favorite
var UserFavorite = UserFavoriteTable{
	Table:     "users.favorite",
	UserID:    "userid",
	BeachID:   "beachid",
	CreatedAt: "createdat",
}
