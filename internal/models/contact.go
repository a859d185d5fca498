package models

type ContactRequest struct {
	Name    string `form:"name" json:"name" validate:"required,max=120,single_line"`
	Email   string `form:"email" json:"email" validate:"required,email"`
	Company string `form:"company" json:"company" validate:"max=120,single_line"`
	Plan    string `form:"plan" json:"plan" validate:"max=120,single_line"`
	Message string `form:"message" json:"message" validate:"required,max=5000"`
}
