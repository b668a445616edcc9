package domain

import "testing"

func TestLanguages_RecordedContract(t *testing.T) {
	if len(Languages) != 13 {
		t.Fatalf("expected 13 languages, got %d", len(Languages))
	}
	// The misspelled entries are part of the recorded contract.
	for _, l := range []string{"chineese", "japaneese"} {
		if !IsValidLanguage(l) {
			t.Fatalf("expected %q to be valid", l)
		}
	}
	// The standard spellings are NOT members of the set.
	for _, l := range []string{"chinese", "japanese"} {
		if IsValidLanguage(l) {
			t.Fatalf("expected %q to be invalid", l)
		}
	}
}

func TestIsValidLanguage(t *testing.T) {
	tests := []struct {
		lang string
		want bool
	}{
		{"english", true},
		{"greek", true},
		{"klingon", false},
		{"English", false}, // exact lowercase match required
		{" english", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := IsValidLanguage(tc.lang); got != tc.want {
			t.Fatalf("IsValidLanguage(%q) = %v, want %v", tc.lang, got, tc.want)
		}
	}
}

func TestQuoteInput_Normalize(t *testing.T) {
	in := QuoteInput{
		Message:  "  Stay Hungry, Stay Foolish  ",
		Speaker:  " Steve Jobs ",
		Language: " english ",
	}
	got := in.Normalize()
	if got.Message != "stay hungry, stay foolish" {
		t.Fatalf("message not normalized: %q", got.Message)
	}
	if got.Speaker != "steve jobs" {
		t.Fatalf("speaker not normalized: %q", got.Speaker)
	}
	if got.Language != "english" {
		t.Fatalf("language not trimmed: %q", got.Language)
	}
}

func TestQuoteInput_Normalize_NonLatinScripts(t *testing.T) {
	got := QuoteInput{Message: "ΓΝΩΘΙ ΣΑΥΤΟΝ", Speaker: "ΣΩΚΡΑΤΗΣ", Language: "greek"}.Normalize()
	if got.Message != "γνωθι σαυτον" {
		t.Fatalf("greek message not lowercased: %q", got.Message)
	}
	if got.Speaker != "σωκρατησ" {
		t.Fatalf("greek speaker not lowercased: %q", got.Speaker)
	}
}

func TestQuoteInput_Normalize_DoesNotMutateReceiver(t *testing.T) {
	in := QuoteInput{Message: "  X  ", Speaker: "Y", Language: "english"}
	_ = in.Normalize()
	if in.Message != "  X  " {
		t.Fatalf("receiver mutated: %q", in.Message)
	}
}
