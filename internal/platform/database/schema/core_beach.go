package schema

// CoreBeachTable represents the 'core.beach' table
type CoreBeachTable struct {
	Table             string
	ID                string
	Slug              string
	Name              string
	Municipality      string
	Lat               string
	Lng               string
	CoverImage        string
	Description       string
	GoogleRating      string
	GoogleReviewCount string
	AccessLabel       string
	PlaceID           string
	SargassumLevel    string
	SurfLevel         string
	WindLevel         string
	HasLifeguard      string
	SafeForChildren   string
	PublishStatus     string
	CreatedAt         string
	UpdatedAt         string
	DeletedAt         string
}

// CoreBeach is the schema definition for core.beach
var CoreBeach = CoreBeachTable{
	Table:             "core.beach",
	ID:                "id",
	Slug:              "slug",
	Name:              "name",
	Municipality:      "municipality",
	Lat:               "lat",
	Lng:               "lng",
	CoverImage:        "coverimage",
	Description:       "description",
	GoogleRating:      "googlerating",
	GoogleReviewCount: "googlereviewcount",
	AccessLabel:       "accesslabel",
	PlaceID:           "placeid",
	SargassumLevel:    "sargassumlevel",
	SurfLevel:         "surflevel",
	WindLevel:         "windlevel",
	HasLifeguard:      "haslifeguard",
	SafeForChildren:   "safeforchildren",
	PublishStatus:     "publishstatus",
	CreatedAt:         "createdat",
	UpdatedAt:         "updatedat",
	DeletedAt:         "deletedat",
}

func (t CoreBeachTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Name, t.Municipality, t.Lat, t.Lng, t.CoverImage,
		t.Description, t.GoogleRating, t.GoogleReviewCount, t.AccessLabel,
		t.PlaceID, t.SargassumLevel, t.SurfLevel, t.WindLevel, t.HasLifeguard,
		t.SafeForChildren, t.PublishStatus, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
