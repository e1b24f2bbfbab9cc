package biztime

import "testing"

func TestParseDeletePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    DeletePolicy
		wantErr bool
	}{
		{"restrict", DeleteRestrict, false},
		{"cascade", DeleteCascade, false},
		{"", "", true},
		{"CASCADE", "", true},
		{"set-null", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDeletePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDeletePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDeletePolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
