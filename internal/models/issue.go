package models

import "time"

type IssueUser struct {
	Login   string `json:"login"`
	HTMLURL string `json:"html_url"`
}

type Reactions struct {
	TotalCount int `json:"total_count"`
}

type Issue struct {
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	HTMLURL   string     `json:"html_url"`
	User      IssueUser  `json:"user"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Comments  int        `json:"comments"`
	Reactions *Reactions `json:"reactions,omitempty"`
	Body      string     `json:"body,omitempty"`
}

func (i Issue) ReactionCount() int {
	if i.Reactions == nil {
		return 0
	}

	return i.Reactions.TotalCount
}

type IssueSearchResult struct {
	TotalCount        int     `json:"total_count"`
	IncompleteResults bool    `json:"incomplete_results"`
	Items             []Issue `json:"items"`
}
