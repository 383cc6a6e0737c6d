// Package post delivers rendered schedule messages to the configured chat
// backends.
package post

import (
	"fmt"
	"log"
)

// PosterFn delivers one rendered message to a target chat. A failure is
// surfaced to the caller; nothing retries internally.
type PosterFn func(target, text string) error

// SendError wraps a delivery failure with its target.
type SendError struct {
	Target string
	Err    error
}

func (e SendError) Error() string {
	return fmt.Sprintf("unable to send to %s: %s", e.Target, e.Err)
}

func (e SendError) Unwrap() error {
	return e.Err
}

// ToStdout prints the message instead of sending it; it is the dry-run
// default when no backend is configured.
func ToStdout(target, text string) error {
	f := log.Flags()
	log.SetFlags(0)
	if target != "" {
		log.Printf("-> %s", target)
	}
	log.Printf("%s\n", text)
	log.SetFlags(f)
	return nil
}
