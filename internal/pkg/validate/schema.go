package validate

import (
	"regexp"
	"strconv"
)

// Kind is a JSON value kind a field is checked against.
type Kind int

const (
	String Kind = iota
	Number
)

// Messages holds the human-readable message per violated rule. Empty applies
// to a present-but-empty string; when unset, Required is reported instead.
type Messages struct {
	Required string
	Empty    string
	Type     string
	MinLen   string
	Pattern  string
}

// Field is one declarative rule set for a request body field.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	MinLen   int            // strings only
	Pattern  *regexp.Regexp // strings only
	Messages Messages
}

// Schema is an ordered set of field rules. Validation collects every
// violation instead of stopping at the first one, so a response can report
// all problems at once.
type Schema struct {
	fields []Field
}

func NewSchema(fields ...Field) *Schema {
	return &Schema{fields: fields}
}

// Validate checks a decoded JSON body against the schema and returns the
// violation messages in field declaration order. An empty result means the
// body is valid. Absent and null values count as missing; an empty string on
// a required field reports the Empty message when one is set. Optional
// missing fields are skipped.
func (s *Schema) Validate(body map[string]interface{}) []string {
	var violations []string

	for _, field := range s.fields {
		value, present := body[field.Name]
		if !present || value == nil {
			if field.Required {
				violations = append(violations, field.Messages.Required)
			}
			continue
		}

		if value == "" {
			switch {
			case field.Required && field.Messages.Empty != "":
				violations = append(violations, field.Messages.Empty)
			case field.Required:
				violations = append(violations, field.Messages.Required)
			}
			continue
		}

		switch field.Kind {
		case String:
			str, ok := value.(string)
			if !ok {
				violations = append(violations, field.Messages.Type)
				continue
			}
			if field.MinLen > 0 && len(str) < field.MinLen {
				violations = append(violations, field.Messages.MinLen)
			}
			if field.Pattern != nil && !field.Pattern.MatchString(str) {
				violations = append(violations, field.Messages.Pattern)
			}
		case Number:
			if !isNumeric(value) {
				violations = append(violations, field.Messages.Type)
			}
		}
	}

	return violations
}

// isNumeric accepts JSON numbers (decoded as float64) and numeric strings.
// Dashboard clients sometimes send stringified numbers; those are coerced
// instead of rejected.
func isNumeric(value interface{}) bool {
	switch v := value.(type) {
	case float64:
		return true
	case string:
		_, err := strconv.ParseFloat(v, 64)
		return err == nil
	default:
		return false
	}
}
