// Package derive turns raw assistant text into a structured checklist.
// Derive is a pure function: same inputs, same output. It never
// fails; unusable input degrades to fallback titles and tasks.
package derive

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/boltnotes/bolt-notes/internal/model"
)

// Checklist is the structured result: a title and ordered task texts.
type Checklist struct {
	Title string
	Tasks []string
}

const (
	// Title candidates at or over this length fall back to the prompt.
	maxTitleLen = 100
	// Prompt-derived titles at or over this length fall back to FallbackTitle.
	maxPromptTitleLen = 50
	// Task lines at or over this length are dropped.
	maxTaskLen = 200

	// FallbackTitle is used when neither the completion nor the
	// prompt yields a usable title.
	FallbackTitle = "AI Generated Checklist"
)

// IntentKeywords classify a user message as a checklist request. They
// are matched as case-insensitive substrings, and stripped when a
// title is derived from the prompt.
var IntentKeywords = []string{"checklist", "steps", "routine", "guide", "todo", "tasks", "plan"}

// actionPhrases are stripped from a prompt before using it as a title.
var actionPhrases = []string{"create", "make", "give me", "help with", "show me"}

// titleStrips are applied in order to the first completion line
// before it is judged as a title: heading markers, a "title:" label,
// then a list bullet.
var titleStrips = []*regexp.Regexp{
	regexp.MustCompile(`^#+\s*`),
	regexp.MustCompile(`(?i)^title:\s*`),
	regexp.MustCompile(`^[-*•]\s*`),
}

// bulletStrip removes a leading list marker from a task line.
var bulletStrip = regexp.MustCompile(`^[-*•]\s*`)

// fallbackTasks replace a parse that produced a title but no tasks.
var fallbackTasks = []string{"Complete the task"}

// emptyCompletionTasks replace a completion with no usable lines at all.
var emptyCompletionTasks = []string{"Complete this task", "Review and finalize"}

// Derive parses completion text into a checklist. The first non-empty
// line is always consumed as the title attempt, even when it is
// rejected; remaining lines become tasks.
func Derive(prompt, completionText string) Checklist {
	var lines []string
	for _, line := range strings.Split(completionText, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return Checklist{
			Title: titleFromPrompt(prompt),
			Tasks: append([]string(nil), emptyCompletionTasks...),
		}
	}

	title := extractTitle(prompt, lines[0])

	var tasks []string
	for _, line := range lines[1:] {
		task := strings.TrimSpace(bulletStrip.ReplaceAllString(strings.TrimSpace(line), ""))
		if n := utf8.RuneCountInString(task); n > 0 && n < maxTaskLen {
			tasks = append(tasks, task)
		}
	}
	if len(tasks) == 0 {
		tasks = append([]string(nil), fallbackTasks...)
	}

	return Checklist{Title: title, Tasks: tasks}
}

// extractTitle normalizes the first line and accepts it as the title
// when it lands in (0, 100) characters, otherwise derives one from
// the prompt.
func extractTitle(prompt, firstLine string) string {
	candidate := strings.TrimSpace(firstLine)
	for _, strip := range titleStrips {
		candidate = strip.ReplaceAllString(candidate, "")
	}
	candidate = strings.TrimSpace(candidate)

	if n := utf8.RuneCountInString(candidate); n > 0 && n < maxTitleLen {
		return candidate
	}
	return titleFromPrompt(prompt)
}

// titleFromPrompt strips action phrases and intent keywords from the
// prompt and uses what remains, capitalized, when it lands in
// (0, 50) characters.
func titleFromPrompt(prompt string) string {
	cleaned := removeAll(prompt, actionPhrases)
	cleaned = removeAll(cleaned, IntentKeywords)
	cleaned = strings.TrimSpace(cleaned)

	if n := utf8.RuneCountInString(cleaned); n > 0 && n < maxPromptTitleLen {
		return capitalize(cleaned)
	}
	return FallbackTitle
}

// removeAll deletes case-insensitive phrase occurrences in a single
// left-to-right pass, trying the phrases in order at each position.
// Text exposed by a removal is not rescanned, so a phrase assembled
// across a seam survives. Phrases are plain ASCII; matching is
// byte-wise with EqualFold.
func removeAll(s string, phrases []string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		skipped := 0
		for _, phrase := range phrases {
			if i+len(phrase) <= len(s) && strings.EqualFold(s[i:i+len(phrase)], phrase) {
				skipped = len(phrase)
				break
			}
		}
		if skipped > 0 {
			i += skipped
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Tasks materializes the checklist entries as unchecked tasks with
// fresh ids, preserving order.
func Tasks(c Checklist) []model.Task {
	tasks := make([]model.Task, 0, len(c.Tasks))
	for _, text := range c.Tasks {
		tasks = append(tasks, model.NewTask(text))
	}
	return tasks
}

// HasChecklistIntent reports whether a message asks for a checklist,
// by case-insensitive substring match against IntentKeywords.
func HasChecklistIntent(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range IntentKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
