package textsim

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and strips punctuation",
			text: "Kubernetes, Docker; PostgreSQL!",
			want: []string{"kubernetes", "docker", "postgresql"},
		},
		{
			name: "drops short tokens",
			text: "go is db ok engineering",
			want: []string{"engineering"},
		},
		{
			name: "drops stopwords",
			text: "the team and the platform",
			want: []string{"team", "platform"},
		},
		{
			name: "drops Indonesian stopwords",
			text: "yang dengan untuk sistem pembayaran",
			want: []string{"sistem", "pembayaran"},
		},
		{
			name: "preserves order and duplicates",
			text: "redis cache redis",
			want: []string{"redis", "cache", "redis"},
		},
		{
			name: "splits on non-word runes",
			text: "node.js ci/cd",
			want: []string{"node"},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokenizeMinLength(t *testing.T) {
	got := TokenizeMinLength("api sql java golang", 4)
	want := []string{"java", "golang"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TokenizeMinLength = %v, want %v", got, want)
	}
}

func TestTokenSet(t *testing.T) {
	set := TokenSet("redis cache redis cache")
	if len(set) != 2 {
		t.Fatalf("expected 2 distinct tokens, got %d", len(set))
	}
	for _, tok := range []string{"redis", "cache"} {
		if _, ok := set[tok]; !ok {
			t.Errorf("missing token %q", tok)
		}
	}
}

func TestIsStopword(t *testing.T) {
	if !IsStopword("the") {
		t.Error("\"the\" should be a stopword")
	}
	if !IsStopword("dengan") {
		t.Error("\"dengan\" should be a stopword")
	}
	if IsStopword("kubernetes") {
		t.Error("\"kubernetes\" should not be a stopword")
	}
}
