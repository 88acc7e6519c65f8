package checkout

import "testing"

func validValues() map[string]string {
	return map[string]string{
		"name":    "Asha Kumar",
		"phone":   "9876543210",
		"email":   "asha@example.com",
		"address": "12 Garden Lane, Shivaji Nagar",
		"city":    "Pune",
		"pincode": "411001",
	}
}

func TestValidateFormAllValid(t *testing.T) {
	res := ValidateForm(validValues(), RequiredFields)
	if !res.Valid {
		t.Fatalf("expected valid form, errors: %v", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", res.Errors)
	}
}

func TestValidateFormAllEmptyRequired(t *testing.T) {
	res := ValidateForm(map[string]string{}, RequiredFields)
	if res.Valid {
		t.Fatalf("expected invalid form")
	}
	for _, field := range RequiredFields {
		if res.Errors[field] != "Required" {
			t.Fatalf("expected %q to be Required, got %q", field, res.Errors[field])
		}
	}
	if _, flagged := res.Errors["email"]; flagged {
		t.Fatalf("optional email must not be flagged when empty")
	}
}

func TestValidateFormShortName(t *testing.T) {
	values := validValues()
	values["name"] = "Al"
	values["address"] = "123 Long Street"
	values["phone"] = "1234567890"

	res := ValidateForm(values, RequiredFields)
	if res.Valid {
		t.Fatalf("expected invalid form")
	}
	if res.Errors["name"] != "Name must be at least 3 characters" {
		t.Fatalf("unexpected name error %q", res.Errors["name"])
	}
	if len(res.Errors) != 1 {
		t.Fatalf("only name should fail, got %v", res.Errors)
	}
}

func TestValidateFormFieldRules(t *testing.T) {
	cases := []struct {
		name    string
		field   string
		value   string
		wantMsg string
	}{
		{"phone too short", "phone", "12345", "Enter valid 10-digit phone"},
		{"phone with letters", "phone", "98765x3210", "Enter valid 10-digit phone"},
		{"bad email", "email", "not-an-email", "Enter valid email"},
		{"email missing tld", "email", "a@b", "Enter valid email"},
		{"short address", "address", "short st", "Address too short"},
		{"one letter city", "city", "P", "Enter valid city"},
		{"pincode too long", "pincode", "4110012", "Enter valid 6-digit pincode"},
		{"pincode with letters", "pincode", "41100a", "Enter valid 6-digit pincode"},
	}

	for _, tc := range cases {
		values := validValues()
		values[tc.field] = tc.value
		res := ValidateForm(values, RequiredFields)
		if res.Valid {
			t.Fatalf("%s: expected invalid form", tc.name)
		}
		if res.Errors[tc.field] != tc.wantMsg {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.wantMsg, res.Errors[tc.field])
		}
	}
}

func TestValidateFormIsPure(t *testing.T) {
	values := map[string]string{"name": "Al"}
	first := ValidateForm(values, RequiredFields)
	second := ValidateForm(values, RequiredFields)
	if first.Valid != second.Valid || len(first.Errors) != len(second.Errors) {
		t.Fatalf("verdict changed between identical calls: %v vs %v", first, second)
	}
	if values["name"] != "Al" || len(values) != 1 {
		t.Fatalf("input map mutated: %v", values)
	}
}

func TestValidateFieldEmptyNeverFlagged(t *testing.T) {
	for _, field := range []string{"name", "phone", "email", "address", "city", "pincode"} {
		if msg, ok := ValidateField(field, ""); !ok || msg != "" {
			t.Fatalf("empty %q should pass field-level validation, got %q", field, msg)
		}
	}
}

func TestValidateFieldNonEmpty(t *testing.T) {
	if msg, ok := ValidateField("phone", "123"); ok || msg != "Enter valid 10-digit phone" {
		t.Fatalf("unexpected result %q ok=%v", msg, ok)
	}
	if msg, ok := ValidateField("phone", "9876543210"); !ok || msg != "" {
		t.Fatalf("valid phone flagged: %q ok=%v", msg, ok)
	}
	if msg, ok := ValidateField("email", "asha@example.com"); !ok || msg != "" {
		t.Fatalf("valid email flagged: %q ok=%v", msg, ok)
	}
}

func TestValidateFieldUnknownFieldIsValid(t *testing.T) {
	if msg, ok := ValidateField("nickname", "whatever"); !ok || msg != "" {
		t.Fatalf("unknown field should be valid, got %q ok=%v", msg, ok)
	}
}
