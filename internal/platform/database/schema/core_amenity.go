package schema

// RefAmenityTable represents the 'core.amenity' table
type RefAmenityTable struct {
	Table string
	ID    string
	Slug  string
	Name  string
	Icon  string
}

// RefAmenity is the schema definition for core.amenity
var RefAmenity = RefAmenityTable{
	Table: "core.amenity",
	ID:    "id",
	Slug:  "slug",
	Name:  "name",
	Icon:  "icon",
}

func (t RefAmenityTable) Columns() []string {
	return []string{t.ID, t.Slug, t.Name, t.Icon}
}
