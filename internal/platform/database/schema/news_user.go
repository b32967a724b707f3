package schema

// NewsUserTable represents the 'users' table
type NewsUserTable struct {
	Table     string
	Username  string
	Name      string
	AvatarURL string
}

// NewsUser is the schema definition for users
var NewsUser = NewsUserTable{
	Table:     "users",
	Username:  "username",
	Name:      "name",
	AvatarURL: "avatar_url",
}

func (t NewsUserTable) Columns() []string {
	return []string{t.Username, t.Name, t.AvatarURL}
}
