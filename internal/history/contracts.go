package history

import "context"

// Persistence is the string key-value substrate the history is stored in.
type Persistence interface {
	// Load returns the value under key; found is false when the key is absent.
	Load(ctx context.Context, key string) (value string, found bool, err error)
	Save(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Confirmer asks the user a yes/no question before destructive operations.
type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(message string) bool

func (f ConfirmFunc) Confirm(message string) bool { return f(message) }

// Always confirms without asking.
var Always Confirmer = ConfirmFunc(func(string) bool { return true })

const (
	ConfirmDeleteMessage = "Are you sure you want to delete this entry?"
	ConfirmClearMessage  = "Are you sure you want to delete all history?"
)
