package middleware

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newRoot(run RunFunc) (*cobra.Command, *cobra.Command) {
	root := &cobra.Command{Use: "member-search"}
	child := &cobra.Command{Use: "search", RunE: run}
	child.Flags().String("team-name", "", "")
	root.AddCommand(child)
	return root, child
}

func TestCommandLoggerLogsSuccess(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core).Sugar()

	root, _ := newRoot(func(*cobra.Command, []string) error { return nil })
	Wrap(root, func() *zap.SugaredLogger { return log })
	root.SetArgs([]string{"search", "--team-name=teamB"})

	require.NoError(t, root.Execute())

	entries := logs.FilterMessage("command").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	require.Equal(t, "member-search search", ctx["command"])
	require.Equal(t, "ok", ctx["status"])
	require.Equal(t, []any{"team-name=teamB"}, ctx["flags"])
}

func TestCommandLoggerLogsError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core).Sugar()

	boom := errors.New("boom")
	root, _ := newRoot(func(*cobra.Command, []string) error { return boom })
	root.SilenceErrors = true
	root.SilenceUsage = true
	Wrap(root, func() *zap.SugaredLogger { return log })
	root.SetArgs([]string{"search"})

	require.ErrorIs(t, root.Execute(), boom)

	entries := logs.FilterMessage("command").All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	require.Equal(t, "error", entries[0].ContextMap()["status"])
}

func TestCommandLoggerWithoutLogger(t *testing.T) {
	root, _ := newRoot(func(*cobra.Command, []string) error { return nil })
	Wrap(root, func() *zap.SugaredLogger { return nil })
	root.SetArgs([]string{"search"})

	require.NoError(t, root.Execute())
}
