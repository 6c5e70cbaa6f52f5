package requests

type LoginForm struct {
	Email    string `json:"email" validate:"required,email_format" label:"Email"`
	Password string `json:"password" validate:"required" label:"Password"`
}
