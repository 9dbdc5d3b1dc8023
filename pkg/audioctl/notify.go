package audioctl

import (
	"github.com/gen2brain/beeep"
	"go.uber.org/zap"
)

// Notifier emits a user-facing notification. Notifications are decoration
// around a completed operation and can never fail it.
type Notifier interface {
	Notify(title string, message string)
}

type toastNotifier struct {
	logger *zap.SugaredLogger
}

// NewToastNotifier creates a desktop-notification Notifier.
func NewToastNotifier(logger *zap.SugaredLogger) Notifier {
	return &toastNotifier{logger: logger.Named("notifier")}
}

func (tn *toastNotifier) Notify(title string, message string) {
	if err := beeep.Notify(title, message, ""); err != nil {
		tn.logger.Warnw("Failed to show notification", "title", title, "error", err)
	}
}

// noopNotifier is used when notifications are disabled.
type noopNotifier struct{}

// NewNoopNotifier creates a Notifier that does nothing.
func NewNoopNotifier() Notifier {
	return noopNotifier{}
}

func (noopNotifier) Notify(string, string) {}
