package lex

import "strings"

// ReadBlockString reads the body of a """-delimited block string. lines
// holds the document's raw (comment-preserving, verbatim) lines, and
// startIdx is the index of the first content line — the line immediately
// following the one that opened the block with a bare """. Scanning stops
// at the first line whose trimmed content is exactly """, which is not
// included in the returned content.
//
// It returns the joined content, the number of lines consumed (including
// the closing fence line), and an error if maxSize is exceeded or EOF is
// reached with no closing fence.
func ReadBlockString(lines []string, startIdx int, maxSize int) (string, int, error) {
	var b strings.Builder
	consumed := 0

	for idx := startIdx; idx < len(lines); idx++ {
		consumed++
		line := lines[idx]
		if strings.TrimSpace(line) == `"""` {
			return b.String(), consumed, nil
		}
		if idx > startIdx {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if b.Len() > maxSize {
			return "", consumed, errBlockStringTooLarge
		}
	}

	return "", consumed, errUnterminatedBlock
}
