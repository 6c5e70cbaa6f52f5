package responses

type Login struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Role       string `json:"role"`
	IsAdmin    bool   `json:"is_admin"`
	RedirectTo string `json:"redirect_to"`
}

type Session struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	IsAdmin   bool   `json:"is_admin"`
	ExpiresAt string `json:"expires_at"`
}
