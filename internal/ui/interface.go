package ui

import "context"

// Interface : sorties destinées à l'utilisateur. Le rapport va sur Out,
// les messages d'état sur Err pour que la sortie standard reste exploitable
// (redirection, pipe).
type Interface interface {
	// PrintReport écrit le rapport tel quel.
	PrintReport(ctx context.Context, report []byte)

	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)
}
