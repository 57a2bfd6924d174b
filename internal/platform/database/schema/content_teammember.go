package schema

// ContentTeamMemberTable represents the 'content.teammember' table
type ContentTeamMemberTable struct {
	Table       string
	ID          string
	Name        string
	RoleTitle   string
	Bio         string
	PhotoURL    string
	SocialLinks string
	SortOrder   string
	IsPublished string
	CreatedAt   string
	UpdatedAt   string
}

// ContentTeamMember is the schema definition for content.teammember
var ContentTeamMember = ContentTeamMemberTable{
	Table:       "content.teammember",
	ID:          "id",
	Name:        "name",
	RoleTitle:   "roletitle",
	Bio:         "bio",
	PhotoURL:    "photourl",
	SocialLinks: "sociallinks",
	SortOrder:   "sortorder",
	IsPublished: "ispublished",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}
