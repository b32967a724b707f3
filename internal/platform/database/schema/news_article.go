package schema

// NewsArticleTable represents the 'articles' table
type NewsArticleTable struct {
	Table     string
	ID        string
	Title     string
	Topic     string
	Author    string
	Body      string
	CreatedAt string
	Votes     string
	ImageURL  string

	// Foreign key constraint names, as declared in the migrations.
	TopicFK  string
	AuthorFK string
}

// NewsArticle is the schema definition for articles
var NewsArticle = NewsArticleTable{
	Table:     "articles",
	ID:        "article_id",
	Title:     "title",
	Topic:     "topic",
	Author:    "author",
	Body:      "body",
	CreatedAt: "created_at",
	Votes:     "votes",
	ImageURL:  "article_img_url",
	TopicFK:   "articles_topic_fkey",
	AuthorFK:  "articles_author_fkey",
}

func (t NewsArticleTable) Columns() []string {
	return []string{t.ID, t.Title, t.Topic, t.Author, t.Body, t.CreatedAt, t.Votes, t.ImageURL}
}
