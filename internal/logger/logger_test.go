package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel accepts configuration spellings and rejects unknown or empty names.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	got, ok := ParseLogLevel(" WARN ")
	require.True(t, ok)
	require.Equal(t, zapcore.WarnLevel, got)

	got, ok = ParseLogLevel("debug")
	require.True(t, ok)
	require.Equal(t, zapcore.DebugLevel, got)

	for _, s := range []string{"", "  ", "loud"} {
		_, ok = ParseLogLevel(s)
		require.False(t, ok, s)
	}
}

// TestSetLevel_GatesContextLogger checks that SetLevel controls what a context logger emits.
func TestSetLevel_GatesContextLogger(t *testing.T) {
	var buf bytes.Buffer

	ctx := WithName(ToContext(context.Background(), newLogger(zapcore.AddSync(&buf))), "check")

	SetLevel(zapcore.WarnLevel)
	t.Cleanup(func() { SetLevel(zapcore.InfoLevel) })

	InfoKV(ctx, "Release metadata is valid")
	require.Empty(t, buf.String())

	WarnKV(ctx, "Version service is not serving", "status", "NOT_SERVING")
	require.Contains(t, buf.String(), "WARN")
	require.Contains(t, buf.String(), "check")
	require.Contains(t, buf.String(), "Version service is not serving")
	require.Contains(t, buf.String(), "NOT_SERVING")

	buf.Reset()
	SetLevel(zapcore.DebugLevel)

	Debugf(ctx, "lookup %s", "MAVEN_ARTIFACT_VERSION")
	require.Contains(t, buf.String(), "lookup MAVEN_ARTIFACT_VERSION")
}
