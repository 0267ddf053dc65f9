package answerer

import (
	"strconv"
	"strings"
)

const answerPrompt = `Answer the question about the filing in one or two sentences.
On the final line, cite the page the answer comes from in the form "PAGE: <number>".
If you cannot ground the answer in a page, end with "PAGE: none".

Question: %s

Answer:`

// parseCitation splits a model completion into the answer text and the
// cited page. The citation is the trailing "PAGE: N" line; anything
// unparseable means no citation.
func parseCitation(content string) (string, int) {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		upper := strings.ToUpper(line)
		if !strings.HasPrefix(upper, "PAGE:") {
			break
		}
		value := strings.TrimSpace(line[len("PAGE:"):])
		answer := strings.TrimSpace(strings.Join(lines[:i], "\n"))
		page, err := strconv.Atoi(value)
		if err != nil || page < 1 {
			return answer, 0
		}
		return answer, page
	}
	return strings.TrimSpace(content), 0
}
