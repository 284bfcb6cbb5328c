package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"telescout-api/core/domain"
	"telescout-api/core/session"
)

// stateBuffer bounds the snapshots queued between the controller and the program
const stateBuffer = 64

// Notifier registers state listeners
type Notifier interface {
	OnChange(fn session.Listener)
}

// Forward delivers state changes from n to send as StateMsg values until ctx
// is done. Listeners run on the controller's goroutine, which may be the
// program's own update loop, so the listener never blocks: when the queue is
// full the oldest snapshot is dropped to make room for the newest.
func Forward(ctx context.Context, n Notifier, send func(tea.Msg)) {
	queue := make(chan domain.SearchState, stateBuffer)

	n.OnChange(func(s domain.SearchState) {
		if ctx.Err() != nil {
			return
		}
		for {
			select {
			case queue <- s:
				return
			default:
			}
			select {
			case <-queue:
			default:
			}
		}
	})

	go func() {
		for {
			select {
			case s := <-queue:
				send(StateMsg{State: s})
			case <-ctx.Done():
				return
			}
		}
	}()
}
