package schema

// UserPreferencesTable represents the 'users.preferences' table
type UserPreferencesTable struct {
	Table            string
	UserID           string
	DistanceUnit     string
	DefaultView      string
	HomeMunicipality string
	SargassumAlerts  string
	SurfAlerts       string
	DataSaver        string
	UpdatedAt        string
}

// UserPreferences is the schema definition for users.preferences
var UserPreferences = UserPreferencesTable{
	Table:            "users.preferences",
	UserID:           "userid",
	DistanceUnit:     "distanceunit",
	DefaultView:      "defaultview",
	HomeMunicipality: "homemunicipality",
	SargassumAlerts:  "sargassumalerts",
	SurfAlerts:       "surfalerts",
	DataSaver:        "datasaver",
	UpdatedAt:        "updatedat",
}
