package completion

import "context"

// Static is a scripted client for tests: it replays responses in
// order and records the prompts it was asked.
type Static struct {
	Responses []string
	Errs      []error
	Calls     []Call
}

// Call records one Complete invocation.
type Call struct {
	Prompt string
	System string
}

func (s *Static) Complete(ctx context.Context, prompt, system string) (string, error) {
	i := len(s.Calls)
	s.Calls = append(s.Calls, Call{Prompt: prompt, System: system})
	if i < len(s.Errs) && s.Errs[i] != nil {
		return "", s.Errs[i]
	}
	if i < len(s.Responses) {
		return s.Responses[i], nil
	}
	return "", &ServiceError{Kind: KindMalformedResponse, Body: "no scripted response"}
}
