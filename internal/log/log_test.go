package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestWithComponentAnnotatesEntries(t *testing.T) {
	var buf bytes.Buffer
	Configure("debug", &buf)

	logger := WithComponent("loader")
	logger.Info().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"component":"loader"`) {
		t.Fatalf("entry missing component field: %s", out)
	}
	if !strings.Contains(out, `"message":"hello"`) {
		t.Fatalf("entry missing message: %s", out)
	}
}
