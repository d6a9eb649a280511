package derive

import (
	"reflect"
	"strings"
	"testing"
)

func TestDerive_TitleAndTasks(t *testing.T) {
	text := "Morning Routine\n- Wake up at 6\n- Stretch\n- Eat breakfast"
	got := Derive("Create a morning routine checklist", text)

	if got.Title != "Morning Routine" {
		t.Errorf("expected title 'Morning Routine', got %q", got.Title)
	}
	want := []string{"Wake up at 6", "Stretch", "Eat breakfast"}
	if !reflect.DeepEqual(got.Tasks, want) {
		t.Errorf("expected tasks %v, got %v", want, got.Tasks)
	}
}

func TestDerive_Deterministic(t *testing.T) {
	prompt := "Plan my week"
	text := "# Weekly Plan\n* Review calendar\n* Block focus time"
	first := Derive(prompt, text)
	second := Derive(prompt, text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("derive is not deterministic: %v vs %v", first, second)
	}
}

func TestDerive_TitleNormalization(t *testing.T) {
	cases := []struct {
		name  string
		first string
		want  string
	}{
		{"heading markers", "## Packing List", "Packing List"},
		{"title prefix", "Title: Packing List", "Packing List"},
		{"title prefix case", "TITLE: Packing List", "Packing List"},
		{"bullet", "- Packing List", "Packing List"},
		{"unicode bullet", "• Packing List", "Packing List"},
		{"heading then label", "# Title: Packing List", "Packing List"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Derive("whatever", tc.first+"\n- pack socks")
			if got.Title != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got.Title)
			}
		})
	}
}

func TestDerive_TitleLengthBoundary(t *testing.T) {
	tasks := "\n- do something"

	accepted := strings.Repeat("a", 99)
	got := Derive("Plan my day", accepted+tasks)
	if got.Title != accepted {
		t.Errorf("99-char title should be accepted, got %q", got.Title)
	}

	rejected := strings.Repeat("a", 100)
	got = Derive("Plan my day", rejected+tasks)
	if got.Title == rejected {
		t.Error("100-char title should be rejected")
	}
	// Prompt-derived fallback: "Plan my day" minus "plan" keyword.
	if got.Title != "My day" {
		t.Errorf("expected prompt-derived title 'My day', got %q", got.Title)
	}
}

func TestDerive_TaskLengthBoundary(t *testing.T) {
	included := strings.Repeat("b", 199)
	excluded := strings.Repeat("c", 200)
	text := "Title\n- " + included + "\n- " + excluded

	got := Derive("anything", text)
	if len(got.Tasks) != 1 {
		t.Fatalf("expected exactly 1 task, got %d", len(got.Tasks))
	}
	if got.Tasks[0] != included {
		t.Errorf("expected the 199-char task to survive")
	}
}

func TestDerive_MultibyteBoundariesCountRunes(t *testing.T) {
	// Bounds are character counts, not byte counts: 60 two-byte
	// runes stay well under the 100-character title limit.
	title := strings.Repeat("é", 60)
	got := Derive("Plan my day", title+"\n- "+strings.Repeat("é", 150))
	if got.Title != title {
		t.Errorf("60-rune title should be accepted, got %q", got.Title)
	}
	if len(got.Tasks) != 1 || got.Tasks[0] != strings.Repeat("é", 150) {
		t.Errorf("150-rune task should survive, got %v", got.Tasks)
	}

	accepted := strings.Repeat("é", 99)
	got = Derive("Plan my day", accepted+"\n- ok")
	if got.Title != accepted {
		t.Errorf("99-rune title should be accepted, got %q", got.Title)
	}
	got = Derive("Plan my day", strings.Repeat("é", 100)+"\n- ok")
	if got.Title != "My day" {
		t.Errorf("100-rune title should fall back to the prompt, got %q", got.Title)
	}

	text := "Title\n- " + strings.Repeat("é", 199) + "\n- " + strings.Repeat("é", 200)
	got = Derive("anything", text)
	if len(got.Tasks) != 1 || got.Tasks[0] != strings.Repeat("é", 199) {
		t.Errorf("expected only the 199-rune task to survive, got %d tasks", len(got.Tasks))
	}
}

func TestDerive_PhraseRemovalSinglePass(t *testing.T) {
	// Removing "create" from "macreateke" exposes "make"; a single
	// left-to-right pass does not rescan the seam, so it survives.
	got := Derive("macreateke plan", "")
	if got.Title != "Make" {
		t.Errorf("expected 'Make', got %q", got.Title)
	}
}

func TestTasksMaterialize(t *testing.T) {
	c := Checklist{Title: "T", Tasks: []string{"first", "second"}}
	tasks := Tasks(c)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Text != "first" || tasks[1].Text != "second" {
		t.Errorf("order not preserved: %v", tasks)
	}
	if tasks[0].ID == "" || tasks[0].ID == tasks[1].ID {
		t.Error("expected fresh unique ids")
	}
	for _, task := range tasks {
		if task.Completed {
			t.Error("materialized tasks must start unchecked")
		}
	}
}

func TestDerive_SingleLineFallbackTask(t *testing.T) {
	got := Derive("Plan my day", "Morning Routine")
	if got.Title != "Morning Routine" {
		t.Errorf("expected title 'Morning Routine', got %q", got.Title)
	}
	if !reflect.DeepEqual(got.Tasks, []string{"Complete the task"}) {
		t.Errorf("expected fallback task list, got %v", got.Tasks)
	}
}

func TestDerive_EmptyCompletion(t *testing.T) {
	got := Derive("Plan my day", "")
	if got.Title != "My day" {
		t.Errorf("expected prompt-derived title 'My day', got %q", got.Title)
	}
	if len(got.Tasks) == 0 {
		t.Error("expected non-empty fallback task list")
	}
}

func TestDerive_WhitespaceOnlyCompletion(t *testing.T) {
	got := Derive("Give me workout steps", "  \n\t\n  ")
	if got.Title != "Workout" {
		t.Errorf("expected 'Workout', got %q", got.Title)
	}
	if len(got.Tasks) == 0 {
		t.Error("expected non-empty fallback task list")
	}
}

func TestDerive_PromptFallbackCapitalizes(t *testing.T) {
	got := Derive("create a garden checklist", "")
	if got.Title != "A garden" {
		t.Errorf("expected 'A garden', got %q", got.Title)
	}
}

func TestDerive_LiteralFallbackTitle(t *testing.T) {
	// Prompt reduces to nothing once phrases and keywords are gone.
	got := Derive("create checklist", "")
	if got.Title != FallbackTitle {
		t.Errorf("expected %q, got %q", FallbackTitle, got.Title)
	}

	// Prompt residue of 50+ chars is also rejected.
	long := "create a checklist " + strings.Repeat("x", 60)
	got = Derive(long, "")
	if got.Title != FallbackTitle {
		t.Errorf("expected %q for over-long prompt residue, got %q", FallbackTitle, got.Title)
	}
}

func TestDerive_FirstLineAlwaysConsumed(t *testing.T) {
	// Even when the first line is rejected as a title, it never
	// reappears as a task.
	rejected := strings.Repeat("a", 150)
	got := Derive("Plan my day", rejected+"\n- only task")
	for _, task := range got.Tasks {
		if task == rejected {
			t.Error("rejected title line leaked into the task list")
		}
	}
	if !reflect.DeepEqual(got.Tasks, []string{"only task"}) {
		t.Errorf("expected [only task], got %v", got.Tasks)
	}
}

func TestDerive_NoHardTaskCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("Big List\n")
	for i := 0; i < 25; i++ {
		b.WriteString("- task line\n")
	}
	got := Derive("anything", b.String())
	if len(got.Tasks) != 25 {
		t.Errorf("expected 25 tasks (no truncation), got %d", len(got.Tasks))
	}
}

func TestDerive_BlankLinesSkipped(t *testing.T) {
	text := "Title\n\n\n- first\n\n- second\n"
	got := Derive("anything", text)
	if !reflect.DeepEqual(got.Tasks, []string{"first", "second"}) {
		t.Errorf("expected [first second], got %v", got.Tasks)
	}
}

func TestHasChecklistIntent(t *testing.T) {
	cases := []struct {
		message string
		want    bool
	}{
		{"Give me the Steps for taxes", true},
		{"show me a CHECKLIST", true},
		{"help me plan a trip", true},
		{"my todo for today", true},
		{"How are you?", false},
		{"tell me a joke", false},
	}
	for _, tc := range cases {
		if got := HasChecklistIntent(tc.message); got != tc.want {
			t.Errorf("HasChecklistIntent(%q) = %v, want %v", tc.message, got, tc.want)
		}
	}
}
