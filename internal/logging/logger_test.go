package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"default is info", false, "", false, true},
		{"env debug", false, "DEBUG", true, true},
		{"env error hides info", false, "error", false, false},
		{"debug flag wins", true, "error", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := newLogger(&buf, tt.debug, tt.level)

			log.Debug("scan skipped")
			log.Info("Campaign created")

			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("scan skipped")))
			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("Campaign created")))
		})
	}
}

func TestNewLogger_StripsTimeOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, false, "").Info("Upkeep Needed", "address", "0x1")

	assert.NotContains(t, buf.String(), "time=")
	assert.Contains(t, buf.String(), `msg="Upkeep Needed" address=0x1`)
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/usecase/registry.go", shortPath("/home/ci/src/campaign-keeper/internal/usecase/registry.go"))
	assert.Equal(t, "main.go", shortPath("/somewhere/else/main.go"))
}
