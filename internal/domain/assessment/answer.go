package assessment

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Answer is a loosely typed answer value: option text, a number, a boolean or a
// free-text rubric. Answers compare by their string form, so 100 and "100" are
// equal while "100" and "100.0" are not.
type Answer struct {
	raw  json.RawMessage
	text string
}

func TextAnswer(s string) Answer {
	b, _ := json.Marshal(s)
	return Answer{raw: b, text: s}
}

func NumberAnswer(f float64) Answer {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	return Answer{raw: json.RawMessage(s), text: s}
}

func (a Answer) IsDefined() bool {
	return len(a.raw) > 0
}

func (a Answer) String() string {
	return a.text
}

// Equal reports whether both answers are defined and share the same string form.
func (a Answer) Equal(o Answer) bool {
	if !a.IsDefined() || !o.IsDefined() {
		return false
	}
	return a.text == o.text
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if !a.IsDefined() {
		return []byte("null"), nil
	}
	return a.raw, nil
}

func (a *Answer) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*a = Answer{}
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Answer{raw: append(json.RawMessage(nil), b...), text: s}
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*a = Answer{raw: append(json.RawMessage(nil), b...), text: strconv.FormatBool(v)}
	case '{', '[':
		*a = Answer{raw: append(json.RawMessage(nil), b...), text: compactJSON(b)}
	default:
		var f float64
		if err := json.Unmarshal(b, &f); err != nil {
			return err
		}
		*a = Answer{raw: append(json.RawMessage(nil), b...), text: strconv.FormatFloat(f, 'f', -1, 64)}
	}
	return nil
}

func compactJSON(b []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return strings.TrimSpace(string(b))
	}
	return buf.String()
}
