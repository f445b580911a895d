package exercise

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/YannErmes/langlearn/internal/storage"
)

// MaxTargetWords caps how many target words a single exercise may use.
// Extra words are silently dropped rather than rejected.
const MaxTargetWords = 10

// DefaultQuestionCount is used when the caller does not ask for a
// specific number of questions.
const DefaultQuestionCount = 10

// ParseTargetWords splits a comma separated word list, trims each entry
// and removes duplicates while keeping the original order. It returns an
// error when no words remain, and truncates to MaxTargetWords otherwise.
func ParseTargetWords(input string) ([]string, error) {
	seen := make(map[string]bool)
	var words []string
	for _, part := range strings.Split(input, ",") {
		word := strings.TrimSpace(part)
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("no target words provided")
	}
	if len(words) > MaxTargetWords {
		words = words[:MaxTargetWords]
	}
	return words, nil
}

// BuildPrompt assembles the generation prompt for a passage, the target
// words the questions must exercise and the desired question count.
func BuildPrompt(passage string, words []string, numQuestions int) string {
	lines := []string{
		"You are an educational assistant. Using the following text as context:",
		passage,
		"",
		"Target words/expressions: " + strings.Join(words, ", "),
		"",
		fmt.Sprintf("Generate exactly %d numbered questions. Each question MUST:", numQuestions),
		"- Be answerable using the context text",
		"- Include at least one of the target words/expressions in its wording",
		"- Require the answerer to use the target word/expression in their answer",
		"",
		"Return ONLY a numbered list of questions. Do NOT return code blocks, JSON, or any explanation. Example:",
		"1. ...",
		"2. ...",
		"3. ...",
	}
	return strings.Join(lines, "\n")
}

var numberedLine = regexp.MustCompile(`^\d+\.\s*(.+)$`)

// ParseQuestions normalizes a model reply into question records. It
// tries, in order: a JSON array of {"q","a"} objects starting at the
// first '[', a numbered plain-text list, and finally one question per
// non-empty line. An error is returned only when nothing usable remains.
func ParseQuestions(raw string) ([]storage.Question, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty response")
	}

	if questions := parseJSONQuestions(raw); len(questions) > 0 {
		return questions, nil
	}

	var questions []storage.Question
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := numberedLine.FindStringSubmatch(line); m != nil {
			questions = append(questions, storage.Question{Q: m[1]})
		}
	}
	if len(questions) > 0 {
		return questions, nil
	}

	// Last resort: treat every non-empty line as a question.
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			questions = append(questions, storage.Question{Q: line})
		}
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions found in response")
	}
	return questions, nil
}

func parseJSONQuestions(raw string) []storage.Question {
	start := strings.Index(raw, "[")
	if start == -1 {
		return nil
	}

	var parsed []storage.Question
	dec := json.NewDecoder(strings.NewReader(raw[start:]))
	if err := dec.Decode(&parsed); err != nil {
		return nil
	}

	var questions []storage.Question
	for _, q := range parsed {
		if strings.TrimSpace(q.Q) != "" {
			questions = append(questions, q)
		}
	}
	return questions
}
