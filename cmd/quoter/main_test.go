package main

import "testing"

func TestApplyColorMode(t *testing.T) {
	tests := []struct {
		mode    string
		wantErr bool
	}{
		{mode: "auto"},
		{mode: ""},
		{mode: "always"},
		{mode: "never"}, // Last so tests run with a plain profile
		{mode: "sometimes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("mode "+tt.mode, func(t *testing.T) {
			err := applyColorMode(tt.mode)
			if (err != nil) != tt.wantErr {
				t.Errorf("applyColorMode(%q) error = %v, wantErr %v", tt.mode, err, tt.wantErr)
			}
		})
	}
}
