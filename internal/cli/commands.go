package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var errEmptyPassword = errors.New("비밀번호가 입력되지 않았습니다")

func StatsCmd(with runWrapper) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "게시판별 글 수와 매칭 응답 통계",
		RunE: with(func(cmd *cobra.Command, rt *Runtime) error {
			stats, err := rt.Admin.Stats(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BOARD\tOPEN\tCLOSED\tTOTAL")
			for _, b := range stats.Boards {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", b.Board, b.Open, b.Closed, b.Total)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			f := stats.Feedback
			fmt.Fprintf(cmd.OutOrStdout(), "\nfeedback: yes=%d no=%d skipped=%d not_asked=%d\n", f.Yes, f.No, f.Skipped, f.NotAsked)
			if stats.MatchRate != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "match rate: %.1f%%\n", *stats.MatchRate*100)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "match rate: -")
			}
			return nil
		}),
	}
}

func PurgeCmd(with runWrapper) *cobra.Command {
	var retention string
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "보관 기간이 지난 마감 글 삭제",
		RunE: with(func(cmd *cobra.Command, rt *Runtime) error {
			result, err := rt.Admin.Purge(cmd.Context(), retention)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d listing(s) closed before %s (retention %s)\n",
				result.Deleted, result.Cutoff.Format("2006-01-02 15:04"), result.Retention)
			return nil
		}),
	}
	cmd.Flags().StringVar(&retention, "retention", "", "Override HOUSEKEEPING_RETENTION, e.g. 720h")
	return cmd
}

func TokenCmd(with runWrapper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "토큰 발급",
	}

	var subject string
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "관리자 대시보드용 토큰 발급",
		RunE: with(func(cmd *cobra.Command, rt *Runtime) error {
			if subject == "" {
				return errors.New("--subject is required")
			}
			signed, err := rt.Tokens.GenerateAdminToken(subject)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		}),
	}
	adminCmd.Flags().StringVar(&subject, "subject", "", "Who the token is issued to")
	cmd.AddCommand(adminCmd)
	return cmd
}

func VerifyCmd(with runWrapper) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "글 비밀번호 확인 (문의 대응용)",
		RunE: with(func(cmd *cobra.Command, rt *Runtime) error {
			if id == "" {
				return errors.New("--id is required")
			}

			fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
			pwd, err := readPasswordFunc(int(os.Stdin.Fd()))
			fmt.Fprintln(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if len(pwd) == 0 {
				return errEmptyPassword
			}

			resp, err := rt.Listings.Verify(cmd.Context(), id, string(pwd))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s [%s]\nedit token (%ds): %s\n",
				resp.Listing.ID, resp.Listing.Status, resp.ExpiresIn, resp.EditToken)
			return nil
		}),
	}
	cmd.Flags().StringVar(&id, "id", "", "Listing id")
	return cmd
}
