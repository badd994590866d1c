package template

import "strings"

// Reserved placeholder names.
const (
	PlaceholderName    = "name"
	PlaceholderMessage = "message"
	PlaceholderPrefix  = "prefix"
	PlaceholderSuffix  = "suffix"
)

// Values supplies the substitutions for the reserved placeholders.
type Values struct {
	Name    string
	Message string
	Prefix  string
	Suffix  string
}

func (v Values) lookup(key string) (string, bool) {
	switch key {
	case PlaceholderName:
		return v.Name, true
	case PlaceholderMessage:
		return v.Message, true
	case PlaceholderPrefix:
		return v.Prefix, true
	case PlaceholderSuffix:
		return v.Suffix, true
	}
	return "", false
}

// segment is either literal text or a placeholder reference.
type segment struct {
	text        string
	placeholder bool
}

// parse splits pattern into segments. "{{" and "}}" are literal braces;
// every other brace must delimit a reserved placeholder name.
func parse(pattern string) ([]segment, error) {
	var (
		segs []segment
		lit  strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		switch c := pattern[i]; c {
		case '{':
			if i+1 < len(pattern) && pattern[i+1] == '{' {
				lit.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(pattern[i+1:], '}')
			if end < 0 {
				return nil, &FormatError{Pattern: pattern, Reason: "unclosed '{'"}
			}
			key := pattern[i+1 : i+1+end]
			switch {
			case key == "":
				return nil, &FormatError{Pattern: pattern, Reason: "empty placeholder"}
			case strings.ContainsRune(key, '{'):
				return nil, &FormatError{Pattern: pattern, Reason: "nested '{' in placeholder", Placeholder: key}
			}
			if _, ok := (Values{}).lookup(key); !ok {
				return nil, &FormatError{Pattern: pattern, Reason: "unknown placeholder", Placeholder: key}
			}
			flush()
			segs = append(segs, segment{text: key, placeholder: true})
			i += end + 2
		case '}':
			if i+1 < len(pattern) && pattern[i+1] == '}' {
				lit.WriteByte('}')
				i += 2
				continue
			}
			return nil, &FormatError{Pattern: pattern, Reason: "single '}' encountered"}
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()
	return segs, nil
}

// Placeholders returns the placeholder names referenced by pattern, in
// order of appearance, or a *FormatError when pattern is malformed.
func Placeholders(pattern string) ([]string, error) {
	segs, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, s := range segs {
		if s.placeholder {
			names = append(names, s.text)
		}
	}
	return names, nil
}

// Format substitutes the reserved placeholders in pattern. Values are
// inserted verbatim. Unknown placeholders, empty or unbalanced braces
// and format specifiers fail with *FormatError.
func Format(pattern string, v Values) (string, error) {
	segs, err := parse(pattern)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(len(pattern) + len(v.Name) + len(v.Message) + len(v.Prefix) + len(v.Suffix))
	for _, s := range segs {
		if !s.placeholder {
			b.WriteString(s.text)
			continue
		}
		val, _ := v.lookup(s.text)
		b.WriteString(val)
	}
	return b.String(), nil
}
