package cmd

// Exit codes for the throwspec CLI
const (
	// ExitSuccess indicates all cases passed
	ExitSuccess = 0

	// ExitCaseFailure indicates one or more cases failed
	ExitCaseFailure = 1

	// ExitParseError indicates a suite file parsing error
	ExitParseError = 2
)
