package mailer

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

const (
	ErrInvalidEmail    = "Please enter a valid email address"
	ErrSubjectRequired = "Please enter a subject"
	ErrMessageRequired = "Please enter a message"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldErrors maps struct fields to the message shown to the visitor.
var fieldErrors = map[string]string{
	"Email":   ErrInvalidEmail,
	"Subject": ErrSubjectRequired,
	"Message": ErrMessageRequired,
}

// Message is a contact form submission.
type Message struct {
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Validate returns one message per invalid field in field order, or nil.
func (m Message) Validate() []string {
	err := validate.Struct(m)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	result := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		if msg, ok := fieldErrors[fe.StructField()]; ok {
			result = append(result, msg)
		}
	}

	return result
}
