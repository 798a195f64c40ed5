package extraction

import (
	"encoding/json"
	"strings"

	"go-label-analyzer/internal/logger"
	"go-label-analyzer/pkg/models"
)

// Normalize parses the model's free-form output into the label schema.
// It never fails: when no JSON object is found, or the object does not
// unmarshal, it logs the raw text and substitutes all-null label data, so
// the extraction miss surfaces as an unidentified record instead of a
// dropped request.
func Normalize(raw string) models.LabelData {
	text := stripCodeFences(raw)

	obj := firstJSONObject(text)
	if obj == "" {
		logger.WithField("raw_text", raw).Warn("No JSON object in model output, falling back to empty label data")
		return models.LabelData{}
	}

	var data models.LabelData
	if err := json.Unmarshal([]byte(obj), &data); err != nil {
		logger.WithError(err).WithField("raw_text", raw).Warn("Model output is not valid label JSON, falling back to empty label data")
		return models.LabelData{}
	}
	return data
}

// stripCodeFences drops a surrounding markdown fence the model may emit
// despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// firstJSONObject returns the first balanced JSON object in s, tolerating
// prose before and after it. Braces inside string literals (escapes
// included) do not count toward the balance, so nested statement lists
// cannot mislead the scan the way a greedy regex would. Known limitation:
// if the model emits several JSON blocks, only the first is taken.
func firstJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
