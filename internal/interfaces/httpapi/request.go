package httpapi

import (
	"bytes"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/kwucouncil/council-api/internal/usecase"
)

// flexString accepts a JSON string, number or boolean and keeps its text.
// Forms post numeric student ids as numbers as often as strings.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*s = ""
	case data[0] == '"':
		var v string
		if err := sonic.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
	case data[0] == '{' || data[0] == '[':
		*s = ""
	default:
		*s = flexString(data)
	}
	return nil
}

func (s flexString) String() string {
	return strings.TrimSpace(string(s))
}

// placeValue is a flexString that also takes the first element of an array,
// as multi-select widgets submit one.
type placeValue string

func (p *placeValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var items []flexString
		if err := sonic.Unmarshal(data, &items); err != nil {
			return err
		}
		if len(items) == 0 {
			*p = ""
			return nil
		}
		*p = placeValue(items[0])
		return nil
	}

	var v flexString
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	*p = placeValue(v)
	return nil
}

type submitPredictionRequest struct {
	Name        flexString `json:"name"`
	StudentID   flexString `json:"student_id"`
	Phone       flexString `json:"phone"`
	FirstPlace  placeValue `json:"first_place"`
	SecondPlace placeValue `json:"second_place"`
	ThirdPlace  placeValue `json:"third_place"`
}

func (r submitPredictionRequest) toInput() usecase.SubmitPredictionInput {
	return usecase.SubmitPredictionInput{
		Name:        r.Name.String(),
		StudentID:   r.StudentID.String(),
		Phone:       r.Phone.String(),
		FirstPlace:  strings.TrimSpace(string(r.FirstPlace)),
		SecondPlace: strings.TrimSpace(string(r.SecondPlace)),
		ThirdPlace:  strings.TrimSpace(string(r.ThirdPlace)),
	}
}

// optionalField tells an absent key from an explicit null.
type optionalField struct {
	Set   bool
	Value any
}

// decodeFields reads a JSON object body keeping raw values, so updates can
// distinguish missing keys and report type errors per field.
func decodeFields(data []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(bytes.TrimSpace(data)) == 0 {
		return fields, nil
	}
	if err := sonic.Unmarshal(data, &fields); err != nil {
		return nil, usecase.UserError(usecase.ErrInvalidInput, "요청 본문이 올바른 JSON이 아닙니다.")
	}
	return fields, nil
}

func field(fields map[string]any, name string) optionalField {
	v, ok := fields[name]
	return optionalField{Set: ok, Value: v}
}

// boolField yields nil when the key is absent or null.
func boolField(fields map[string]any, name string) (*bool, error) {
	f := field(fields, name)
	if !f.Set || f.Value == nil {
		return nil, nil
	}
	b, ok := f.Value.(bool)
	if !ok {
		return nil, usecase.UserError(usecase.ErrInvalidInput, name+" 값은 true 또는 false여야 합니다.")
	}
	return &b, nil
}

// noteField reports whether admin_note was sent; null clears the note.
func noteField(fields map[string]any) (*string, bool, error) {
	f := field(fields, "admin_note")
	if !f.Set {
		return nil, false, nil
	}
	if f.Value == nil {
		return nil, true, nil
	}
	s, ok := f.Value.(string)
	if !ok {
		return nil, false, usecase.UserError(usecase.ErrInvalidInput, "admin_note 값은 문자열이어야 합니다.")
	}
	return &s, true, nil
}
