package sanitizer

import (
	"reflect"
	"testing"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "Room 101", expected: "Room 101"},
		{name: "surrounding whitespace", input: "  Room 101  ", expected: "Room 101"},
		{name: "internal runs", input: "Room \t 101", expected: "Room 101"},
		{name: "empty", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.input); got != tt.expected {
				t.Errorf("Label(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFeatureTag(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Sound System", expected: "sound_system"},
		{input: "sound-system", expected: "sound_system"},
		{input: "WiFi", expected: "wifi"},
		{input: "  projector ", expected: "projector"},
	}

	for _, tt := range tests {
		if got := FeatureTag(tt.input); got != tt.expected {
			t.Errorf("FeatureTag(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFeatures_DedupePreservesOrder(t *testing.T) {
	got := Features([]string{"Projector", "wifi", "projector", "", "Wi Fi", "wifi"})
	want := []string{"projector", "wifi", "wi_fi"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Features() = %v, want %v", got, want)
	}
}

func TestFeatures_Idempotent(t *testing.T) {
	once := Features([]string{"Sound System", "projector"})
	twice := Features(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Features not idempotent: %v vs %v", once, twice)
	}
}
