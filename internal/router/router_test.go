package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/cnkang/mathgenie-sub000/internal/screen"
)

type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPushPop(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	quizScr := &stubScreen{title: "quiz"}
	r.Push(quizScr)

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("active = %q, want quiz", r.Active().Title())
	}
	if !quizScr.initRan {
		t.Error("pushed screen Init did not run")
	}

	r.Pop()
	if r.Active().Title() != "home" {
		t.Errorf("active after pop = %q, want home", r.Active().Title())
	}
}

func TestPopKeepsBottomScreen(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1 (bottom screen never pops)", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "quiz"})

	summary := &stubScreen{title: "summary"}
	r.Replace(summary)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2 after replace", r.Depth())
	}
	if r.Active().Title() != "summary" {
		t.Errorf("active = %q, want summary", r.Active().Title())
	}
	if !summary.initRan {
		t.Error("replacement screen Init did not run")
	}
}

func TestUpdateRoutesNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "quiz"}})
	if r.Active().Title() != "quiz" {
		t.Errorf("active = %q, want quiz", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Errorf("active = %q, want home", r.Active().Title())
	}
}
