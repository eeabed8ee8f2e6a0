package specs

import (
	"errors"
	"testing"
)

func Test_Schema_Validate(t *testing.T) {
	tests := []struct {
		name    string
		schema  Schema
		wantErr bool
	}{
		{"valid", Schema{"inch", "micron"}, false},
		{"empty schema is valid", Schema{}, false},
		{"empty name", Schema{"inch", ""}, true},
		{"whitespace only name", Schema{"inch", "   "}, true},
		{"duplicate name", Schema{"inch", "inch"}, true},
		{"duplicate after trim", Schema{"inch", " inch "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidSchema) {
				t.Errorf("expected ErrInvalidSchema, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func Test_NewValues_resetsEveryField(t *testing.T) {
	schema := Schema{"inch", "micron"}

	values := NewValues(schema)

	if len(values) != len(schema) {
		t.Fatalf("expected %d values, got %d", len(schema), len(values))
	}

	for _, name := range schema {
		value, ok := values[name]
		if !ok {
			t.Errorf("expected key '%s' to be present", name)
		}
		if value != "" {
			t.Errorf("expected key '%s' to be empty, got '%s'", name, value)
		}
	}
}

func Test_Values_Conforms(t *testing.T) {
	schema := Schema{"inch", "micron"}

	tests := []struct {
		name    string
		values  Values
		wantErr bool
	}{
		{"complete", Values{"inch": "12", "micron": "20"}, false},
		{"empty value", Values{"inch": "12", "micron": ""}, true},
		{"whitespace value", Values{"inch": "12", "micron": "  "}, true},
		{"missing key", Values{"inch": "12"}, true},
		{"extra key", Values{"inch": "12", "micron": "20", "gsm": "80"}, true},
		{"wrong key set same size", Values{"inch": "12", "gsm": "80"}, true},
		{"nil values", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.values.Conforms(schema)
			if tt.wantErr && !errors.Is(err, ErrIncompleteSpecs) {
				t.Errorf("expected ErrIncompleteSpecs, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func Test_Values_Conforms_emptySchema(t *testing.T) {
	if err := (Values{}).Conforms(Schema{}); err != nil {
		t.Errorf("empty values should conform to an empty schema, got %v", err)
	}
}

func Test_Values_Matches(t *testing.T) {
	values := Values{"inch": "12", "micron": "20"}

	if !values.Matches("12") {
		t.Error("expected match on exact value")
	}
	if !values.Matches("1") {
		t.Error("expected match on substring")
	}
	if values.Matches("75") {
		t.Error("expected no match on absent value")
	}
	if !values.Matches("") {
		t.Error("expected empty query to match")
	}

	upper := Values{"grade": "Food Safe"}
	if !upper.Matches("food safe") {
		t.Error("expected case insensitive match")
	}
}

func Test_Values_jsonbRoundTrip(t *testing.T) {
	values := Values{"inch": "12", "micron": "20"}

	raw, err := values.Value()
	if err != nil {
		t.Fatalf("value failed: %v", err)
	}

	var scanned Values
	if err := scanned.Scan(raw); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if len(scanned) != len(values) {
		t.Fatalf("expected %d values, got %d", len(values), len(scanned))
	}
	for k, v := range values {
		if scanned[k] != v {
			t.Errorf("expected %s=%s, got %s", k, v, scanned[k])
		}
	}
}
