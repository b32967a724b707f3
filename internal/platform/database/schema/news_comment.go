package schema

// NewsCommentTable represents the 'comments' table
type NewsCommentTable struct {
	Table     string
	ID        string
	ArticleID string
	Author    string
	Body      string
	Votes     string
	CreatedAt string

	// Foreign key constraint names, as declared in the migrations.
	ArticleFK string
	AuthorFK  string
}

// NewsComment is the schema definition for comments
var NewsComment = NewsCommentTable{
	Table:     "comments",
	ID:        "comment_id",
	ArticleID: "article_id",
	Author:    "author",
	Body:      "body",
	Votes:     "votes",
	CreatedAt: "created_at",
	ArticleFK: "comments_article_id_fkey",
	AuthorFK:  "comments_author_fkey",
}

func (t NewsCommentTable) Columns() []string {
	return []string{t.ID, t.ArticleID, t.Author, t.Body, t.Votes, t.CreatedAt}
}
