package models

import "time"

// Response represents one persisted form submission from the public
// landing page. All free-text fields are stored already sanitized
// (angle brackets stripped, truncated to 500 characters).
//
// A response is immutable once inserted: the system never updates or
// deletes rows, it only creates them via the intake pipeline and reads
// them back through the admin query service.
type Response struct {
	// ID is the auto-assigned sequential identifier of the submission.
	ID int64 `json:"id"`

	// FirstName is the submitter's first name. Required.
	// Form field: "nome".
	FirstName string `json:"first_name"`

	// LastName is the submitter's last name. Required.
	// Form field: "sobrenome".
	LastName string `json:"last_name"`

	// Email is the submitter's e-mail address. Required; must match a
	// permissive local@domain.tld shape. Form field: "email".
	Email string `json:"email"`

	// WhatsApp is the submitter's contact phone, exactly 11 ASCII digits
	// (2-digit area code + 9-digit number). Required.
	// Form field: "telefone".
	WhatsApp string `json:"whatsapp"`

	// City is the submitter's city. Optional. Form field: "cidade".
	City string `json:"city,omitempty"`

	// State is the two-letter state/region code. Optional.
	// Form field: "uf".
	State string `json:"state,omitempty"`

	// Movement is the social movement the submitter belongs to. Optional.
	// Form field: "movimento".
	Movement string `json:"movement,omitempty"`

	// Union is the trade union the submitter belongs to. Optional.
	// Form field: "sindicato".
	Union string `json:"union,omitempty"`

	// Category is the submitter's technology/work area. Optional.
	// Form field: "categoria".
	Category string `json:"category,omitempty"`

	// Employer is the submitter's current employer. Optional.
	// Form field: "empresa".
	Employer string `json:"employer,omitempty"`

	// Studying reports whether the submitter is currently enrolled in a
	// course. Optional. Form field: "estuda".
	Studying bool `json:"studying"`

	// Course is the name of the course being studied. Optional.
	// Form field: "curso".
	Course string `json:"course,omitempty"`

	// Institution is the teaching institution of the course. Optional.
	// Form field: "instituicao".
	Institution string `json:"institution,omitempty"`

	// Message is the free-text message left by the submitter. Optional.
	// Form field: "mensagem".
	Message string `json:"message,omitempty"`

	// ImagePath is the relative path of the uploaded image inside the
	// configured upload directory. Empty when no image was attached.
	ImagePath string `json:"image_path,omitempty"`

	// IPAddress is the client address the submission originated from.
	// Assigned by the server, never taken from the form body.
	IPAddress string `json:"ip_address,omitempty"`

	// CreatedAt is the server-assigned insertion timestamp.
	// Never updated after the row is written.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Response model.
func (r Response) TableName() string {
	return "responses"
}
