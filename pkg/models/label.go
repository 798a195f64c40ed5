package models

// Status indicates whether enough label data was extracted to consider
// the product identified.
type Status string

const (
	StatusIdentified   Status = "identified"
	StatusUnidentified Status = "unidentified"
)

// ActiveIngredient is a single name/concentration pair from the
// ingredients panel.
type ActiveIngredient struct {
	Name          string `json:"name"`
	Concentration string `json:"concentration"`
}

// FirstAid holds the four first-aid routes from the label.
type FirstAid struct {
	Eyes       *string `json:"eyes"`
	Skin       *string `json:"skin"`
	Ingestion  *string `json:"ingestion"`
	Inhalation *string `json:"inhalation"`
}

// LabelData is the fixed extraction schema for an agrochemical product label.
// Every field is optional; absent fields marshal as explicit null.
// Slice order is preserved as extracted.
type LabelData struct {
	EPARegistrationNumber   *string            `json:"epa_registration_number"`
	ProductName             *string            `json:"product_name"`
	Manufacturer            *string            `json:"manufacturer"`
	SignalWord              *string            `json:"signal_word"`
	ActiveIngredients       []ActiveIngredient `json:"active_ingredients"`
	PrecautionaryStatements []string           `json:"precautionary_statements"`
	FirstAid                *FirstAid          `json:"first_aid"`
	StorageAndDisposal      *string            `json:"storage_and_disposal"`
}

// Status derives the identification status: identified when the
// registration number or product name carries a value. This is the single
// place the status is computed.
func (l LabelData) Status() Status {
	if present(l.EPARegistrationNumber) || present(l.ProductName) {
		return StatusIdentified
	}
	return StatusUnidentified
}

// present mirrors the client contract: null and "" are absent, anything
// else (whitespace included) is a value.
func present(s *string) bool {
	return s != nil && *s != ""
}
