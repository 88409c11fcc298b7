package lex

import "strings"

// ParseCSVRow splits line (already stripped of its leading "| " prefix) into
// raw field strings. Fields are comma-separated; unquoted fields are
// trimmed of surrounding whitespace; a field may be wrapped in double
// quotes to include a comma or leading/trailing spaces verbatim, and inside
// quotes "" escapes a literal quote while \n \t \\ \" escape the expected
// characters.
func ParseCSVRow(line string) ([]string, error) {
	var fields []string
	i := 0
	n := len(line)

	for {
		for i < n && (line[i] == ' ' || line[i] == '\t') {
			i++
		}

		if i < n && line[i] == '"' {
			field, next, err := parseQuotedField(line, i)
			if err != nil {
				return nil, err
			}
			fields = append(fields, field)
			i = next
			for i < n && (line[i] == ' ' || line[i] == '\t') {
				i++
			}
			if i < n && line[i] == ',' {
				i++
				continue
			}
			if i >= n {
				break
			}
			return nil, errBadCSVQuote
		}

		start := i
		for i < n && line[i] != ',' {
			i++
		}
		fields = append(fields, strings.TrimSpace(line[start:i]))
		if i < n && line[i] == ',' {
			i++
			continue
		}
		break
	}

	return fields, nil
}

func parseQuotedField(line string, i int) (string, int, error) {
	var b strings.Builder
	i++ // skip opening quote
	n := len(line)
	for i < n {
		c := line[i]
		switch c {
		case '"':
			if i+1 < n && line[i+1] == '"' {
				b.WriteByte('"')
				i += 2
				continue
			}
			return b.String(), i + 1, nil
		case '\\':
			if i+1 >= n {
				return "", 0, errBadEscape
			}
			switch line[i+1] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			default:
				return "", 0, errBadEscape
			}
			i += 2
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", 0, errBadCSVQuote
}
