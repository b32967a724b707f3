package schema

// NewsTopicTable represents the 'topics' table
type NewsTopicTable struct {
	Table       string
	Slug        string
	Description string

	// Unique constraint names, as declared in the migrations.
	SlugKey        string
	DescriptionKey string
}

// NewsTopic is the schema definition for topics
var NewsTopic = NewsTopicTable{
	Table:          "topics",
	Slug:           "slug",
	Description:    "description",
	SlugKey:        "topics_pkey",
	DescriptionKey: "topics_description_key",
}

func (t NewsTopicTable) Columns() []string {
	return []string{t.Slug, t.Description}
}
