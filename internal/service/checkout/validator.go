package checkout

import (
	"regexp"
	"strings"
)

// FieldRule pairs a field's predicate with the message shown when it
// fails. The rule table is static configuration, never mutated.
type FieldRule struct {
	Field string
	Valid func(string) bool
	Error string
}

var (
	phoneRe   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodeRe = regexp.MustCompile(`^[0-9]{6}$`)
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// fieldRules mirrors the checkout form. Email is optional: empty passes,
// non-empty must look like an address.
var fieldRules = []FieldRule{
	{"name", func(v string) bool { return len(strings.TrimSpace(v)) >= 3 }, "Name must be at least 3 characters"},
	{"phone", phoneRe.MatchString, "Enter valid 10-digit phone"},
	{"email", func(v string) bool { return v == "" || emailRe.MatchString(v) }, "Enter valid email"},
	{"address", func(v string) bool { return len(strings.TrimSpace(v)) >= 10 }, "Address too short"},
	{"city", func(v string) bool { return len(strings.TrimSpace(v)) >= 2 }, "Enter valid city"},
	{"pincode", pincodeRe.MatchString, "Enter valid 6-digit pincode"},
}

// RequiredFields get the fixed "Required" message when left empty on
// submit.
var RequiredFields = []string{"name", "phone", "address", "city", "pincode"}

// requiredMsg is deliberately terse; the form renders it next to the field.
const requiredMsg = "Required"

// ValidateField checks one field the way a loss-of-focus handler would.
// Empty values are never flagged here, only on submit: don't nag before
// the user finishes typing. Unrecognized fields are valid.
func ValidateField(field, value string) (string, bool) {
	for i := range fieldRules {
		if fieldRules[i].Field != field {
			continue
		}
		if value != "" && !fieldRules[i].Valid(value) {
			return fieldRules[i].Error, false
		}
		return "", true
	}
	return "", true
}

// FormResult is the verdict of a form-level validation run.
type FormResult struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// ValidateForm applies every rule to the submitted values. A required
// empty field gets "Required"; a non-empty value failing its rule gets
// the rule's message. Pure: same inputs, same verdict, no side effects.
func ValidateForm(values map[string]string, required []string) FormResult {
	req := make(map[string]bool, len(required))
	for _, f := range required {
		req[f] = true
	}

	res := FormResult{Valid: true, Errors: map[string]string{}}
	for _, rule := range fieldRules {
		value := values[rule.Field]
		switch {
		case req[rule.Field] && value == "":
			res.Errors[rule.Field] = requiredMsg
			res.Valid = false
		case value != "" && !rule.Valid(value):
			res.Errors[rule.Field] = rule.Error
			res.Valid = false
		}
	}
	return res
}
