package model

import "testing"

func TestValidateTrainNumber(t *testing.T) {
	valid := []string{"RJ12_EXP", "T1", "12345", "a", "A_B_9"}
	for _, number := range valid {
		if err := ValidateTrainNumber(number); err != nil {
			t.Errorf("ValidateTrainNumber(%q) = %v, want nil", number, err)
		}
	}

	invalid := []string{"", "12 34", "RJ-12", "exp!", "über", "T1;DROP"}
	for _, number := range invalid {
		if err := ValidateTrainNumber(number); err == nil {
			t.Errorf("ValidateTrainNumber(%q) = nil, want error", number)
		}
	}
}
