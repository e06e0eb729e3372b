package submission

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Field is a form value as sent by the browser. Forms post strings, but
// number inputs and checkbox groups arrive as numbers, booleans or arrays,
// so all of them are accepted and flattened to trimmed text.
type Field string

func (f *Field) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	s, err := flatten(v)
	if err != nil {
		return err
	}
	*f = Field(s)
	return nil
}

func (f Field) String() string {
	return string(f)
}

func flatten(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return strings.TrimSpace(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	case []any:
		parts := make([]string, 0, len(x))
		for _, item := range x {
			s, err := flatten(item)
			if err != nil {
				return "", err
			}
			if s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", "), nil
	default:
		return "", fmt.Errorf("unsupported form value of type %T", v)
	}
}

// BetaForm is the beta signup. The survey page posts the same form with the
// optional survey answers filled in.
type BetaForm struct {
	Name       Field `json:"name" validate:"required,max=120"`
	Email      Field `json:"email" validate:"required,email,max=254"`
	Company    Field `json:"company" validate:"required,max=160"`
	FleetSize  Field `json:"fleetSize" validate:"required,max=32"`
	Phone      Field `json:"phone" validate:"max=40"`
	Role       Field `json:"role" validate:"max=120"`
	Vehicles   Field `json:"vehicles" validate:"max=500"`
	Challenges Field `json:"challenges" validate:"max=2000"`
	Message    Field `json:"message" validate:"max=5000"`
}

// ContactForm is the general contact form. The investor page posts it with
// Inquiry set to "investor".
type ContactForm struct {
	Name    Field `json:"name" validate:"required,max=120"`
	Email   Field `json:"email" validate:"required,email,max=254"`
	Company Field `json:"company" validate:"max=160"`
	Subject Field `json:"subject" validate:"max=200"`
	Inquiry Field `json:"inquiry" validate:"max=40"`
	Message Field `json:"message" validate:"required,max=5000"`
}

// fleetSizeValue returns the fleet size as an int when it is a plain
// number so the spreadsheet column stays numeric.
func fleetSizeValue(f Field) any {
	if n, err := strconv.Atoi(strings.ReplaceAll(string(f), ",", "")); err == nil {
		return n
	}
	return string(f)
}
