package logs

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
		logger.Debug("below default level")
	})
}

func TestToJournalKey(t *testing.T) {
	if k := toJournalKey("coop.frame"); k != "COOP_FRAME" {
		t.Fatalf("got %q", k)
	}
}
