// internal/handlers/undo_notifier.go
package handlers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/klerys/shoplist-be/internal/core/ports"
)

// UndoNotifier owns the undo countdown. The service layer only ever sees
// confirm or dismiss calls; the clock lives out here with the transport.
// Arming a new token disarms whatever timer was running, mirroring the
// single pending slot in the service.
type UndoNotifier struct {
	service ports.ListService
	timeout time.Duration
	logger  *slog.Logger

	mu    sync.Mutex
	token uuid.UUID
	timer *time.Timer
}

// NewUndoNotifier creates a notifier that auto-dismisses pending undos
// after the configured timeout.
func NewUndoNotifier(service ports.ListService, timeout time.Duration, logger *slog.Logger) *UndoNotifier {
	return &UndoNotifier{
		service: service,
		timeout: timeout,
		logger:  logger.With(slog.String("component", "undo_notifier")),
	}
}

// Arm starts the countdown for the given token, replacing any previous one.
func (n *UndoNotifier) Arm(token uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}

	n.token = token
	n.timer = time.AfterFunc(n.timeout, func() {
		n.expire(token)
	})
}

// Disarm stops the countdown if it is still tracking the given token.
func (n *UndoNotifier) Disarm(token uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.token != token {
		return
	}

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.token = uuid.Nil
}

// DisarmAll stops any running countdown regardless of token.
func (n *UndoNotifier) DisarmAll() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.token = uuid.Nil
}

// expire fires on the timer goroutine. The token captured at Arm time is
// passed through to DismissUndo, so a slot that has since been overwritten
// or resolved is left alone.
func (n *UndoNotifier) expire(token uuid.UUID) {
	n.mu.Lock()
	if n.token == token {
		n.token = uuid.Nil
		n.timer = nil
	}
	n.mu.Unlock()

	if n.service.DismissUndo(context.Background(), token) {
		n.logger.Info("pending undo expired",
			slog.String("undo_token", token.String()),
			slog.Duration("timeout", n.timeout))
	}
}
