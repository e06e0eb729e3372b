package submission

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type FormType string

const (
	TypeBeta    FormType = "beta"
	TypeContact FormType = "contact"
)

// Request is the JSON envelope posted by the site's form hooks.
type Request struct {
	Type     FormType        `json:"type"`
	FormData json.RawMessage `json:"formData"`
}

// Response is the JSON body returned to the form hooks.
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Failure builds the error envelope.
func Failure(message string) Response {
	return Response{Success: false, Error: message}
}

// Submission is a decoded and validated form. Exactly one of Beta and
// Contact is set, matching Type.
type Submission struct {
	ID      string
	Type    FormType
	Beta    *BetaForm
	Contact *ContactForm
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode parses and validates a relay request body.
func Decode(body []byte) (Submission, error) {
	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return Submission{}, invalid("invalid JSON payload")
	}
	if req.Type == "" {
		return Submission{}, invalid("missing form type")
	}
	data := bytes.TrimSpace(req.FormData)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Submission{}, invalid("missing formData")
	}

	switch req.Type {
	case TypeBeta:
		var f BetaForm
		if err := decodeForm(data, &f); err != nil {
			return Submission{}, err
		}
		return Submission{Type: TypeBeta, Beta: &f}, nil
	case TypeContact:
		var f ContactForm
		if err := decodeForm(data, &f); err != nil {
			return Submission{}, err
		}
		return Submission{Type: TypeContact, Contact: &f}, nil
	default:
		return Submission{}, invalid("unknown form type %q", req.Type)
	}
}

func decodeForm(data []byte, dst any) error {
	if err := json.Unmarshal(data, dst); err != nil {
		return invalid("invalid formData: %v", err)
	}
	if err := validate.Struct(dst); err != nil {
		return fieldError(err)
	}
	return nil
}

func fieldError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return invalid("invalid formData")
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", fe.Field()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return &ValidationError{Message: strings.Join(msgs, "; ")}
}

func (s Submission) Name() string {
	if s.Beta != nil {
		return s.Beta.Name.String()
	}
	if s.Contact != nil {
		return s.Contact.Name.String()
	}
	return ""
}

func (s Submission) Email() string {
	if s.Beta != nil {
		return s.Beta.Email.String()
	}
	if s.Contact != nil {
		return s.Contact.Email.String()
	}
	return ""
}

// SheetName is the spreadsheet tab the row is appended to.
func (s Submission) SheetName() string {
	if s.Type == TypeBeta {
		return "Beta Signups"
	}
	return "Contact"
}

// Row returns the ordered spreadsheet values for the submission.
func (s Submission) Row(ts time.Time) []any {
	stamp := ts.UTC().Format(time.RFC3339)
	switch {
	case s.Beta != nil:
		f := s.Beta
		return []any{
			stamp,
			string(TypeBeta),
			f.Name.String(),
			f.Email.String(),
			f.Company.String(),
			fleetSizeValue(f.FleetSize),
			f.Phone.String(),
			f.Role.String(),
			f.Vehicles.String(),
			f.Challenges.String(),
			f.Message.String(),
		}
	case s.Contact != nil:
		f := s.Contact
		return []any{
			stamp,
			string(TypeContact),
			f.Name.String(),
			f.Email.String(),
			f.Company.String(),
			f.Subject.String(),
			f.Inquiry.String(),
			f.Message.String(),
		}
	}
	return nil
}

func (s Submission) SuccessMessage() string {
	if s.Type == TypeBeta {
		return "Thanks for joining the beta! We'll be in touch soon."
	}
	return "Thanks for reaching out! We'll get back to you shortly."
}
