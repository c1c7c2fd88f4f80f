package affine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestJSONParser_ParseChallenges(t *testing.T) {
	challenges, err := loadTestChallenges("challenges.json")
	if err != nil {
		t.Fatalf("Failed to parse challenges: %v", err)
	}

	if len(challenges) != 4 {
		t.Fatalf("Expected 4 challenges, got %d", len(challenges))
	}

	for i, ch := range challenges {
		if ch.Ciphertext == "" {
			t.Errorf("Challenge %d: ciphertext is empty", i)
		}
	}

	if challenges[1].Crib != "attack" {
		t.Errorf("Expected crib 'attack', got %q", challenges[1].Crib)
	}
	if challenges[1].Key == nil || *challenges[1].Key != (Key{A: 5, B: 8}) {
		t.Errorf("Expected key a=5, b=8, got %v", challenges[1].Key)
	}
	if challenges[2].Key != nil {
		t.Errorf("Expected no key for challenge 2, got %s", challenges[2].Key)
	}
}

func TestJSONParser_ParseChallenges_CustomFields(t *testing.T) {
	path := writeTempFile(t, "custom.json", `[{"ct": "IZZISG", "hint": "attack", "mult": "5", "shift": 8}]`)

	parser := &JSONParser{
		CiphertextField: "ct",
		CribField:       "hint",
		AField:          "mult",
		BField:          "shift",
	}

	challenges, err := parser.ParseChallenges(path)
	if err != nil {
		t.Fatalf("Failed to parse with custom fields: %v", err)
	}
	if len(challenges) != 1 {
		t.Fatalf("Expected 1 challenge, got %d", len(challenges))
	}

	ch := challenges[0]
	if ch.Ciphertext != "IZZISG" || ch.Crib != "attack" {
		t.Errorf("Unexpected challenge: %+v", ch)
	}
	if ch.Key == nil || *ch.Key != (Key{A: 5, B: 8}) {
		t.Errorf("Expected key a=5, b=8, got %v", ch.Key)
	}
}

func TestJSONParser_ParseChallenges_Errors(t *testing.T) {
	tests := map[string]string{
		"invalid json":        `[{"ciphertext": `,
		"missing ciphertext":  `[{"crib": "attack"}]`,
		"ciphertext not text": `[{"ciphertext": 12}]`,
		"a without b":         `[{"ciphertext": "IZZISG", "a": 5}]`,
		"a not a number":      `[{"ciphertext": "IZZISG", "a": "five", "b": 8}]`,
		"not an array":        `{"ciphertext": "IZZISG"}`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeTempFile(t, "challenges.json", content)
			if _, err := (&JSONParser{}).ParseChallenges(path); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestJSONParser_ParseChallenges_InvalidFile(t *testing.T) {
	parser := &JSONParser{}

	_, err := parser.ParseChallenges(filepath.Join(fixturesDir(), "nonexistent.json"))
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestCSVParser_ParseChallenges(t *testing.T) {
	parser := &CSVParser{}

	challenges, err := parser.ParseChallenges(filepath.Join(fixturesDir(), "challenges.csv"))
	if err != nil {
		t.Fatalf("Failed to parse challenges: %v", err)
	}

	if len(challenges) != 3 {
		t.Fatalf("Expected 3 challenges, got %d", len(challenges))
	}

	if challenges[0].Key == nil || *challenges[0].Key != (Key{A: 7, B: 3}) {
		t.Errorf("Expected key a=7, b=3, got %v", challenges[0].Key)
	}
	if challenges[1].Ciphertext != "IZZISG IZ XIOV" {
		t.Errorf("Unexpected ciphertext %q", challenges[1].Ciphertext)
	}
	if challenges[1].Crib != "attack" {
		t.Errorf("Expected crib 'attack', got %q", challenges[1].Crib)
	}
	if challenges[2].Key != nil {
		t.Errorf("Expected no key for challenge 2, got %s", challenges[2].Key)
	}
}

func TestCSVParser_ParseChallenges_Errors(t *testing.T) {
	tests := map[string]string{
		"missing ciphertext column": "crib,a,b\nattack,5,8\n",
		"a without b":               "ciphertext,a,b\nIZZISG,5,\n",
		"bad number":                "ciphertext,a,b\nIZZISG,five,8\n",
		"empty file":                "",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeTempFile(t, "challenges.csv", content)
			if _, err := (&CSVParser{}).ParseChallenges(path); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}
