package exercise

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseTargetWords(t *testing.T) {
	words, err := ParseTargetWords("cat, sat , mat")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(words, []string{"cat", "sat", "mat"}) {
		t.Errorf("Unexpected words: %v", words)
	}
}

func TestParseTargetWordsDeduplicates(t *testing.T) {
	words, err := ParseTargetWords("cat, cat, sat")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(words, []string{"cat", "sat"}) {
		t.Errorf("Expected duplicates to be dropped, got %v", words)
	}
}

func TestParseTargetWordsEmptyInput(t *testing.T) {
	if _, err := ParseTargetWords("  , ,  "); err == nil {
		t.Error("Expected an error for an input without words")
	}
	if _, err := ParseTargetWords(""); err == nil {
		t.Error("Expected an error for an empty input")
	}
}

func TestParseTargetWordsTruncates(t *testing.T) {
	input := "a,b,c,d,e,f,g,h,i,j,k,l"
	words, err := ParseTargetWords(input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(words) != MaxTargetWords {
		t.Errorf("Expected %d words, got %d", MaxTargetWords, len(words))
	}
	if words[len(words)-1] != "j" {
		t.Errorf("Expected the first %d words to survive, got %v", MaxTargetWords, words)
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("The cat sat.", []string{"cat", "sat"}, 5)

	for _, want := range []string{
		"You are an educational assistant.",
		"The cat sat.",
		"Target words/expressions: cat, sat",
		"Generate exactly 5 numbered questions.",
		"Return ONLY a numbered list of questions.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestParseQuestionsNumberedList(t *testing.T) {
	questions, err := ParseQuestions("1. What did the cat do?\n2. Where did it sit?")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("Expected 2 questions, got %d", len(questions))
	}
	if questions[0].Q != "What did the cat do?" || questions[1].Q != "Where did it sit?" {
		t.Errorf("Unexpected questions: %+v", questions)
	}
	if questions[0].A != "" || questions[1].A != "" {
		t.Error("Numbered lists carry no answers")
	}
}

func TestParseQuestionsJSONArray(t *testing.T) {
	questions, err := ParseQuestions(`[{"q":"Q1","a":"A1"}]`)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(questions) != 1 || questions[0].Q != "Q1" || questions[0].A != "A1" {
		t.Errorf("Unexpected questions: %+v", questions)
	}
}

func TestParseQuestionsJSONWithLeadingProse(t *testing.T) {
	raw := "Here are your questions:\n[{\"q\":\"Q1\"},{\"q\":\"Q2\",\"a\":\"A2\"}]"
	questions, err := ParseQuestions(raw)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(questions) != 2 || questions[1].A != "A2" {
		t.Errorf("Unexpected questions: %+v", questions)
	}
}

func TestParseQuestionsInvalidJSONFallsBackToLines(t *testing.T) {
	raw := "[not json\nWhat sound does a cat make?"
	questions, err := ParseQuestions(raw)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("Expected each line to become a question, got %+v", questions)
	}
	if questions[1].Q != "What sound does a cat make?" {
		t.Errorf("Unexpected questions: %+v", questions)
	}
}

func TestParseQuestionsEmptyResponse(t *testing.T) {
	if _, err := ParseQuestions("   \n  "); err == nil {
		t.Error("Expected an error for an empty response")
	}
}
