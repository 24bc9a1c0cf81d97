package texel

import (
	"log/slog"
	"sync/atomic"
)

// discard is the silent default. Its handler reports every level as
// disabled, so debug calls in the allocation paths cost one atomic load and
// one Enabled check.
var discard = slog.New(slog.DiscardHandler)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(discard)
}

// SetLogger routes texel diagnostics to l. A nil l silences them again.
// It may be called while other goroutines are logging.
//
// Everything texel logs is at [slog.LevelDebug]: the size of each update
// buffer, the region it covers, decoded image bounds and device uploads.
// To see them:
//
//	texel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	logger.Store(l)
}

// Logger returns the logger installed by SetLogger. The transfer, device,
// shaderio and texload packages log through it.
func Logger() *slog.Logger {
	return logger.Load()
}
