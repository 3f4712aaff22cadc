package models

import "io"

// Submission carries the raw form fields of one intake request exactly as
// they arrived over the wire, before sanitization and validation.
//
// Field names follow the public form contract of the landing page, which
// uses Portuguese input names (nome, sobrenome, telefone, ...). The intake
// pipeline turns an accepted Submission into a persisted [Response].
type Submission struct {
	// FirstName is the "nome" form field. Required.
	FirstName string

	// LastName is the "sobrenome" form field. Required.
	LastName string

	// Email is the "email" form field. Required.
	Email string

	// WhatsApp is the "telefone" form field. Required.
	WhatsApp string

	// City is the "cidade" form field.
	City string

	// State is the "uf" form field.
	State string

	// Movement is the "movimento" form field.
	Movement string

	// Union is the "sindicato" form field.
	Union string

	// Category is the "categoria" form field.
	Category string

	// Employer is the "empresa" form field.
	Employer string

	// Studying is the raw "estuda" form field ("sim", "on", "1", ...).
	// Normalized to a boolean by the intake pipeline.
	Studying string

	// Course is the "curso" form field.
	Course string

	// Institution is the "instituicao" form field.
	Institution string

	// Message is the "mensagem" form field.
	Message string
}

// UploadedImage is an optional image attached to a submission.
type UploadedImage struct {
	// Filename is the original client-side file name. The extension is
	// validated against the intake allow-list before the file is stored.
	Filename string

	// Content streams the raw file bytes.
	Content io.Reader
}
