package challenge

import (
	"time"

	chal "github.com/pathgenius/genius/internal/challenge"
	"github.com/pathgenius/genius/internal/store"
)

// timerTickMsg is sent every second to update the elapsed clock.
type timerTickMsg time.Time

// attemptSavedMsg is sent when the finished attempt has been persisted.
type attemptSavedMsg struct {
	Result chal.Result
	Vs     *store.VsRecord
	Err    error
}

// dailySavedMsg is sent when a finished daily test has been persisted.
type dailySavedMsg struct {
	Err error
}
