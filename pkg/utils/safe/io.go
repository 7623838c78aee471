package safe

import (
	"context"
	"io"
	"log/slog"

	"github.com/secmon-lab/riskview/pkg/utils/logging"
)

// Close closes closer and logs a failure against name. Nil closers are ignored.
func Close(ctx context.Context, closer io.Closer, name string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Error("Failed to close", slog.String("name", name), slog.Any("error", err))
	}
}
