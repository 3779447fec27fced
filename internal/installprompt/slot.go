// Package installprompt models the one-shot "install this app" capability the
// platform hands out. A prompt may be offered at any time, a newer offer replaces
// an older one, and a prompt is consumed at most once.
package installprompt

import (
	"context"
	"errors"
	"sync"
)

type Outcome string

const (
	OutcomeAccepted  Outcome = "accepted"
	OutcomeDismissed Outcome = "dismissed"
)

var ErrNoPrompt = errors.New("no install prompt available")

// Prompter shows the platform install dialog and reports what the user chose.
type Prompter interface {
	Prompt(ctx context.Context) (Outcome, error)
}

// Slot holds at most one pending Prompter. The zero value is an empty slot.
type Slot struct {
	mu     sync.Mutex
	prompt Prompter
	gen    uint64
}

// Offer makes p the pending prompt, replacing any earlier one.
func (s *Slot) Offer(p Prompter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = p
	s.gen++
}

func (s *Slot) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prompt != nil
}

// Consume shows the pending prompt and clears the slot. If showing the prompt
// fails the prompt is put back, unless a newer one was offered meanwhile.
func (s *Slot) Consume(ctx context.Context) (Outcome, error) {
	s.mu.Lock()
	p, gen := s.prompt, s.gen
	s.prompt = nil
	s.mu.Unlock()

	if p == nil {
		return "", ErrNoPrompt
	}

	outcome, err := p.Prompt(ctx)
	if err != nil {
		s.mu.Lock()
		if s.gen == gen && s.prompt == nil {
			s.prompt = p
		}
		s.mu.Unlock()
		return "", err
	}
	return outcome, nil
}
