// Package middleware contains command middlewares for delivery.
package middleware

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// RunFunc is the signature of cobra.Command.RunE.
type RunFunc func(cmd *cobra.Command, args []string) error

// CommandLogger logs command runs with name, flags, status and duration.
// log is resolved at run time because the logger is built in a pre-run hook.
func CommandLogger(log func() *zap.SugaredLogger, next RunFunc) RunFunc {
	return func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		err := next(cmd, args)
		dur := time.Since(start)

		l := log()
		if l == nil {
			return err
		}

		changed := make([]string, 0)
		cmd.Flags().Visit(func(f *pflag.Flag) {
			changed = append(changed, f.Name+"="+f.Value.String())
		})

		status := "ok"
		if err != nil {
			status = "error"
		}
		fields := []any{
			"command", cmd.CommandPath(),
			"flags", changed,
			"status", status,
			"duration_ms", float64(dur.Microseconds()) / 1000.0,
		}
		if err != nil {
			l.Errorw("command", append(fields, "error", err)...)
			return err
		}
		l.Infow("command", fields...)
		return nil
	}
}

// Wrap applies CommandLogger to every runnable subcommand of root.
func Wrap(root *cobra.Command, log func() *zap.SugaredLogger) {
	for _, c := range root.Commands() {
		if c.RunE != nil {
			c.RunE = CommandLogger(log, c.RunE)
		}
		Wrap(c, log)
	}
}
