package biztime

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single word", "Springboard", "springboard"},
		{"already lowercase", "apple", "apple"},
		{"acronym", "IBM", "ibm"},
		{"spaces", "Apple Computer", "apple-computer"},
		{"punctuation", "Apple Computer, Inc.", "apple-computer-inc"},
		{"surrounding whitespace", "  Big   Blue  ", "big-blue"},
		{"digits", "3M Company", "3m-company"},
		{"accents removed", "Café Olé", "cafe-ole"},
		{"sharp s", "Straße AG", "strasse-ag"},
		{"stroked o", "Øresund", "oresund"},
		{"stroked l and accents", "Łódź", "lodz"},
		{"ligature", "Æther Œuvre", "aether-oeuvre"},
		{"symbols only", "!!! ???", ""},
		{"empty", "", ""},
		{"hyphens collapse", "a--b__c", "a-b-c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlugifyIsIdempotent(t *testing.T) {
	names := []string{"Springboard", "Apple Computer, Inc.", "  Big   Blue  ", "Café Olé", "a--b__c", "ümlaut-Überall", "Straße AG", "Øresund"}

	for _, name := range names {
		once := Slugify(name)
		if twice := Slugify(once); twice != once {
			t.Errorf("Slugify not idempotent for %q: %q then %q", name, once, twice)
		}
	}
}

func TestSlugifyCollisions(t *testing.T) {
	// names that differ only in case or punctuation map to the same company code
	if Slugify("Apple") != Slugify("APPLE!") {
		t.Errorf("expected %q and %q to collide", "Apple", "APPLE!")
	}
}
