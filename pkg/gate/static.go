package gate

import "context"

// StaticEnvironment is an Environment with fixed answers. It serves tests
// and headless runs where no interactive prompt is possible.
type StaticEnvironment struct {
	Platform  Family
	OSVersion int

	// Current is the status reported without prompting.
	Current Status

	// Outcome is the status returned by a consent request.
	Outcome Status

	// Requests counts how many consent prompts were issued.
	Requests int
}

// Granted returns an environment where access is always allowed without
// prompting.
func Granted() *StaticEnvironment {
	return &StaticEnvironment{
		Platform: FamilyOther,
		Current:  StatusGranted,
		Outcome:  StatusGranted,
	}
}

func (e *StaticEnvironment) Family() Family { return e.Platform }

func (e *StaticEnvironment) Version() int { return e.OSVersion }

func (e *StaticEnvironment) Status(ctx context.Context) (Status, error) {
	return e.Current, nil
}

func (e *StaticEnvironment) Request(ctx context.Context) (Status, error) {
	e.Requests++
	return e.Outcome, nil
}

var _ Environment = (*StaticEnvironment)(nil)
