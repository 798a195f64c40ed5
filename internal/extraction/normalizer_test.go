package extraction

import (
	"testing"

	"go-label-analyzer/pkg/models"
)

const identifiedJSON = `{"epa_registration_number":"12345-67","product_name":"WeedAway","manufacturer":null,"signal_word":"Warning","active_ingredients":[{"name":"Glyphosate","concentration":"41%"}],"precautionary_statements":["Keep out of reach of children"],"first_aid":{"eyes":"Rinse with water","skin":null,"ingestion":null,"inhalation":null},"storage_and_disposal":"Store in original container"}`

func TestNormalize_WellFormed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"Bare JSON", identifiedJSON},
		{"Leading prose", "Here is the extracted label data:\n" + identifiedJSON},
		{"Trailing prose", identifiedJSON + "\nLet me know if you need anything else."},
		{"Prose both sides", "Sure! " + identifiedJSON + " Hope that helps."},
		{"Markdown fenced", "```json\n" + identifiedJSON + "\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := Normalize(tt.text)

			if data.EPARegistrationNumber == nil || *data.EPARegistrationNumber != "12345-67" {
				t.Errorf("epa_registration_number = %v, want 12345-67", data.EPARegistrationNumber)
			}
			if data.ProductName == nil || *data.ProductName != "WeedAway" {
				t.Errorf("product_name = %v, want WeedAway", data.ProductName)
			}
			if data.Manufacturer != nil {
				t.Errorf("manufacturer = %v, want nil", data.Manufacturer)
			}
			if data.SignalWord == nil || *data.SignalWord != "Warning" {
				t.Errorf("signal_word = %v, want Warning", data.SignalWord)
			}
			if len(data.ActiveIngredients) != 1 || data.ActiveIngredients[0].Name != "Glyphosate" ||
				data.ActiveIngredients[0].Concentration != "41%" {
				t.Errorf("active_ingredients = %v", data.ActiveIngredients)
			}
			if len(data.PrecautionaryStatements) != 1 ||
				data.PrecautionaryStatements[0] != "Keep out of reach of children" {
				t.Errorf("precautionary_statements = %v", data.PrecautionaryStatements)
			}
			if data.FirstAid == nil || data.FirstAid.Eyes == nil || *data.FirstAid.Eyes != "Rinse with water" {
				t.Errorf("first_aid = %v", data.FirstAid)
			}
			if data.FirstAid != nil && data.FirstAid.Skin != nil {
				t.Errorf("first_aid.skin = %v, want nil", *data.FirstAid.Skin)
			}
			if data.StorageAndDisposal == nil || *data.StorageAndDisposal != "Store in original container" {
				t.Errorf("storage_and_disposal = %v", data.StorageAndDisposal)
			}
			if data.Status() != models.StatusIdentified {
				t.Errorf("Status() = %q, want identified", data.Status())
			}
		})
	}
}

func TestNormalize_Fallback(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"Empty text", ""},
		{"No JSON at all", "I could not read the label in this photo."},
		{"Unbalanced object", `{"product_name":"WeedAway"`},
		{"Malformed JSON", `{product_name: WeedAway}`},
		{"Wrong field types", `{"active_ingredients":"none","product_name":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := Normalize(tt.text)
			if data.EPARegistrationNumber != nil || data.ProductName != nil ||
				data.Manufacturer != nil || data.SignalWord != nil ||
				data.FirstAid != nil || data.StorageAndDisposal != nil {
				t.Errorf("expected all-null label data, got %+v", data)
			}
			if data.ActiveIngredients != nil || data.PrecautionaryStatements != nil {
				t.Errorf("expected nil slices, got %+v", data)
			}
			if data.Status() != models.StatusUnidentified {
				t.Errorf("Status() = %q, want unidentified", data.Status())
			}
		})
	}
}

func TestFirstJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Simple object",
			input:    `{"a":1}`,
			expected: `{"a":1}`,
		},
		{
			name:     "Nested objects",
			input:    `{"a":{"b":{"c":1}}}`,
			expected: `{"a":{"b":{"c":1}}}`,
		},
		{
			name:     "Braces inside string literal",
			input:    `{"statement":"avoid {contact} with skin"} trailing`,
			expected: `{"statement":"avoid {contact} with skin"}`,
		},
		{
			name:     "Escaped quote inside string",
			input:    `{"a":"say \"hi\" {now}"} extra`,
			expected: `{"a":"say \"hi\" {now}"}`,
		},
		{
			name:     "Prose on both sides",
			input:    `result follows {"a":1} done`,
			expected: `{"a":1}`,
		},
		{
			name:     "Only first of two objects",
			input:    `{"a":1} {"b":2}`,
			expected: `{"a":1}`,
		},
		{
			name:     "No object",
			input:    "nothing here",
			expected: "",
		},
		{
			name:     "Never closed",
			input:    `{"a":{"b":1}`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstJSONObject(tt.input); got != tt.expected {
				t.Errorf("firstJSONObject(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
