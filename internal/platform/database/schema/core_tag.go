package schema

// RefTagTable represents the 'core.tag' table
type RefTagTable struct {
	Table    string
	ID       string
	Slug     string
	Name     string
	Category string
}

// RefTag is the schema definition for core.tag
var RefTag = RefTagTable{
	Table:    "core.tag",
	ID:       "id",
	Slug:     "slug",
	Name:     "name",
	Category: "category",
}

func (t RefTagTable) Columns() []string {
	return []string{t.ID, t.Slug, t.Name, t.Category}
}
