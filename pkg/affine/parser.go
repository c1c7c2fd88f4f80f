package affine

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ChallengeParser defines the interface for loading challenges from various sources.
type ChallengeParser interface {
	// ParseChallenges parses challenges from a source and returns them.
	ParseChallenges(source string) ([]*Challenge, error)
}

// JSONParser parses challenges from JSON files.
type JSONParser struct {
	CiphertextField string // Field name for ciphertext (default: "ciphertext")
	CribField       string // Field name for crib (default: "crib")
	AField          string // Field name for expected a (default: "a")
	BField          string // Field name for expected b (default: "b")
}

// ParseChallenges parses challenges from a JSON file.
//
// Expected format:
// [
//
//	{"ciphertext": "IZZISG", "crib": "attack"},
//	{"ciphertext": "IZZISG", "a": 5, "b": 8}
//
// ]
func (p *JSONParser) ParseChallenges(jsonFile string) ([]*Challenge, error) {
	file, err := os.Open(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.UseNumber()

	var items []map[string]interface{}
	if err := decoder.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	ciphertextField := fieldOrDefault(p.CiphertextField, "ciphertext")
	cribField := fieldOrDefault(p.CribField, "crib")
	aField := fieldOrDefault(p.AField, "a")
	bField := fieldOrDefault(p.BField, "b")

	challenges := make([]*Challenge, 0, len(items))
	for i, item := range items {
		ch := &Challenge{}

		ctVal, ok := item[ciphertextField]
		if !ok {
			return nil, fmt.Errorf("challenge %d: missing %s field", i, ciphertextField)
		}
		ct, ok := ctVal.(string)
		if !ok {
			return nil, fmt.Errorf("challenge %d: %s field must be a string", i, ciphertextField)
		}
		ch.Ciphertext = ct

		if cribVal, ok := item[cribField]; ok {
			crib, ok := cribVal.(string)
			if !ok {
				return nil, fmt.Errorf("challenge %d: %s field must be a string", i, cribField)
			}
			ch.Crib = crib
		}

		aVal, hasA := item[aField]
		bVal, hasB := item[bField]
		if hasA != hasB {
			return nil, fmt.Errorf("challenge %d: %s and %s must be given together", i, aField, bField)
		}
		if hasA {
			a, err := parseInt(aVal)
			if err != nil {
				return nil, fmt.Errorf("challenge %d: failed to parse a: %w", i, err)
			}
			b, err := parseInt(bVal)
			if err != nil {
				return nil, fmt.Errorf("challenge %d: failed to parse b: %w", i, err)
			}
			ch.Key = &Key{A: a, B: b}
		}

		challenges = append(challenges, ch)
	}

	return challenges, nil
}

// CSVParser parses challenges from CSV files with a header row.
type CSVParser struct {
	CiphertextCol string // Column name for ciphertext (default: "ciphertext")
	CribCol       string // Column name for crib (default: "crib")
	ACol          string // Column name for expected a (default: "a")
	BCol          string // Column name for expected b (default: "b")
}

// ParseChallenges parses challenges from a CSV file. Empty a/b cells mean the
// key is unknown.
func (p *CSVParser) ParseChallenges(csvFile string) ([]*Challenge, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	ciphertextCol := fieldOrDefault(p.CiphertextCol, "ciphertext")
	cribCol := fieldOrDefault(p.CribCol, "crib")
	aCol := fieldOrDefault(p.ACol, "a")
	bCol := fieldOrDefault(p.BCol, "b")

	ctIdx, cribIdx, aIdx, bIdx := -1, -1, -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case ciphertextCol:
			ctIdx = i
		case cribCol:
			cribIdx = i
		case aCol:
			aIdx = i
		case bCol:
			bIdx = i
		}
	}

	if ctIdx == -1 {
		return nil, fmt.Errorf("missing required column: %s", ciphertextCol)
	}

	challenges := make([]*Challenge, 0)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if ctIdx >= len(record) {
			return nil, fmt.Errorf("line %d: ciphertext column out of range", line)
		}
		ch := &Challenge{Ciphertext: record[ctIdx]}

		if cribIdx >= 0 && cribIdx < len(record) {
			ch.Crib = record[cribIdx]
		}

		aCell := cell(record, aIdx)
		bCell := cell(record, bIdx)
		if (aCell == "") != (bCell == "") {
			return nil, fmt.Errorf("line %d: %s and %s must be given together", line, aCol, bCol)
		}
		if aCell != "" {
			a, err := strconv.Atoi(aCell)
			if err != nil {
				return nil, fmt.Errorf("line %d: failed to parse a: %w", line, err)
			}
			b, err := strconv.Atoi(bCell)
			if err != nil {
				return nil, fmt.Errorf("line %d: failed to parse b: %w", line, err)
			}
			ch.Key = &Key{A: a, B: b}
		}

		challenges = append(challenges, ch)
	}

	return challenges, nil
}

func fieldOrDefault(name, def string) string {
	if name == "" {
		return def
	}
	return name
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// parseInt parses an integer from a JSON number or a decimal string.
func parseInt(val interface{}) (int, error) {
	switch v := val.(type) {
	case json.Number:
		n, err := strconv.Atoi(string(v))
		if err != nil {
			return 0, fmt.Errorf("invalid number format: %s", v)
		}
		return n, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("invalid number format: %s", v)
		}
		return n, nil
	case float64:
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("unsupported type: %T", val)
	}
}
