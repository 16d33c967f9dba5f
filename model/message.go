package model

// Message is an owned, serializable projection of a parsed conventional
// commit. Unlike commit.Commit, its fields are copies, so it outlives
// the message text it was parsed from.
type Message struct {
	Type        string    `json:"type"`
	Scope       string    `json:"scope,omitempty"`
	Description string    `json:"description"`
	Body        string    `json:"body,omitempty"`
	Breaking    bool      `json:"breaking,omitempty"`
	Trailers    []Trailer `json:"trailers,omitempty"`
}

type Trailer struct {
	Token     string `json:"token"`
	Separator string `json:"separator"`
	Value     string `json:"value"`
}
