package models

import "testing"

func TestInsuranceType_Valid(t *testing.T) {
	valid := []InsuranceType{InsuranceMandatory, InsuranceVoluntary, InsuranceBoth}
	for _, it := range valid {
		if !it.Valid() {
			t.Errorf("expected %q to be valid", it)
		}
	}

	invalid := []InsuranceType{"", "premium", "MANDATORY", "Both"}
	for _, it := range invalid {
		if it.Valid() {
			t.Errorf("expected %q to be invalid", it)
		}
	}
}
