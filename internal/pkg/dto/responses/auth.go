package responses

type Login struct {
	Message string `json:"message"`
	User    string `json:"user"`
}

type Me struct {
	Authenticated bool   `json:"authenticated"`
	User          string `json:"user,omitempty"`
}
