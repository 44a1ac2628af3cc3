// Package session holds the front-end state of one copywriting session,
// independent of any UI toolkit.
package session

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/sozercan/ai-copywriter/apimodels"
)

const (
	MaxContentLength     = 2000
	MinContentLength     = 10
	CopyFeedbackDuration = time.Second

	// previewLength is the content prefix quoted by RegenerateOne.
	previewLength = 15
)

// FailureMessage is shown whenever a generate round trip yields no titles.
const FailureMessage = "AI 제목 생성 중 오류가 발생했습니다. 다시 시도해주세요."

var (
	ErrNotReady     = errors.New("session: content too short or request in flight")
	ErrNoSuchTitle  = errors.New("session: no title at index")
	ErrNotSubmitted = errors.New("session: no request in flight")
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseSubmitting:
		return "submitting"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return "idle"
	}
}

type Session struct {
	content string
	tone    string
	phase   Phase
	titles  []string
	message string

	copiedIndex int
	copiedUntil time.Time

	darkMode bool
	now      func() time.Time
}

type Option func(*Session)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

func New(defaultTone string, opts ...Option) *Session {
	s := &Session{
		tone:        defaultTone,
		copiedIndex: -1,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetContent replaces the email body, truncated to MaxContentLength characters.
func (s *Session) SetContent(content string) {
	if utf8.RuneCountInString(content) > MaxContentLength {
		content = string([]rune(content)[:MaxContentLength])
	}
	s.content = content
}

func (s *Session) Content() string { return s.content }

func (s *Session) ContentLength() int { return utf8.RuneCountInString(s.content) }

func (s *Session) SetTone(tone string) { s.tone = tone }

func (s *Session) Tone() string { return s.tone }

func (s *Session) Phase() Phase { return s.phase }

// Titles returns the titles on display. A failed round trip leaves the
// previous titles in place.
func (s *Session) Titles() []string { return s.titles }

// Message is the failure notice, empty unless the phase is PhaseFailure.
func (s *Session) Message() string { return s.message }

func (s *Session) CanSubmit() bool {
	return s.ContentLength() >= MinContentLength && s.phase != PhaseSubmitting
}

// Submit moves to PhaseSubmitting and returns the request to send.
func (s *Session) Submit() (apimodels.GenerateRequest, error) {
	if !s.CanSubmit() {
		return apimodels.GenerateRequest{}, ErrNotReady
	}
	s.phase = PhaseSubmitting
	s.message = ""
	return apimodels.GenerateRequest{Content: s.content, Tone: s.tone}, nil
}

// Resolve completes the in-flight request. An error or an empty title list
// is a failure.
func (s *Session) Resolve(titles []string, err error) error {
	if s.phase != PhaseSubmitting {
		return ErrNotSubmitted
	}
	if err != nil || len(titles) == 0 {
		s.phase = PhaseFailure
		s.message = FailureMessage
		return nil
	}
	s.phase = PhaseSuccess
	s.titles = append([]string(nil), titles...)
	s.copiedIndex = -1
	return nil
}

// Copy marks title index as copied and returns its text for the clipboard.
func (s *Session) Copy(index int) (string, error) {
	if index < 0 || index >= len(s.titles) {
		return "", ErrNoSuchTitle
	}
	s.copiedIndex = index
	s.copiedUntil = s.now().Add(CopyFeedbackDuration)
	return s.titles[index], nil
}

// CopiedIndex reports which title shows copy feedback, or -1.
func (s *Session) CopiedIndex() int {
	if s.copiedIndex < 0 || !s.now().Before(s.copiedUntil) {
		return -1
	}
	return s.copiedIndex
}

// RegenerateOne replaces a single title with a local placeholder. No request
// is sent.
func (s *Session) RegenerateOne(index int) error {
	if index < 0 || index >= len(s.titles) {
		return ErrNoSuchTitle
	}
	preview := s.content
	if utf8.RuneCountInString(preview) > previewLength {
		preview = string([]rune(preview)[:previewLength])
	}
	titles := append([]string(nil), s.titles...)
	titles[index] = fmt.Sprintf("[%s] 다시 생성된 새로운 제목 %d: %s...", s.tone, index+1, preview)
	s.titles = titles
	return nil
}

func (s *Session) ToggleDarkMode() bool {
	s.darkMode = !s.darkMode
	return s.darkMode
}

func (s *Session) DarkMode() bool { return s.darkMode }
