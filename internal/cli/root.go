package cli

import (
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var readPasswordFunc = term.ReadPassword // mockable

// runWrapper opens a Runtime for the selected env around a command body.
type runWrapper func(run func(cmd *cobra.Command, rt *Runtime) error) func(*cobra.Command, []string) error

func Execute() error {
	return NewRoot(OpenDatabase).Execute()
}

func NewRoot(open Opener) *cobra.Command {
	var env string

	root := &cobra.Command{
		Use:          "boardctl",
		Short:        "과외 게시판 운영 도구",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// logs go to stderr so command output can be piped
			logger.Setup(env, cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&env, "env", "local", "Environment (local|dev|prod)")

	withRuntime := func(run func(cmd *cobra.Command, rt *Runtime) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			rt, err := open(env)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()
			return run(cmd, rt)
		}
	}

	root.AddCommand(
		StatsCmd(withRuntime),
		PurgeCmd(withRuntime),
		TokenCmd(withRuntime),
		VerifyCmd(withRuntime),
	)
	return root
}
