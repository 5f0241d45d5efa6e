package team

// Team is the API response model for a team summary.
type Team struct {
	ID   int64  `json:"id" doc:"Team id"`
	Name string `json:"name" doc:"Team name"`
}

// Member is the API response model for a team membership.
type Member struct {
	UserID int64  `json:"userID" doc:"Member's user id"`
	Role   string `json:"role" doc:"Member's role: OWNER, ADMIN, MEMBER, or VIEWER"`
}
