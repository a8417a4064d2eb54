package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// errRejected is returned by match if some string is not in the language.
var errRejected = errors.New("string rejected")

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match PATTERN STRING...",
		Short: "Test which strings are in the language of PATTERN",
		Long: `Test which strings are in the language of PATTERN. The whole string
must match. The exit status is 1 if any string is rejected.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := compile(args[0])
			if err != nil {
				return err
			}
			data := pterm.TableData{{"string", "result"}}
			rejected := 0
			for _, s := range args[1:] {
				result := "accept"
				if !re.MatchString(s) {
					result = "reject"
					rejected++
				}
				data = append(data, []string{strconv.Quote(s), result})
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Wrap(err, "render table")
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			if rejected > 0 {
				log.Debugf("%d of %d strings rejected", rejected, len(args)-1)
				return errRejected
			}
			return nil
		},
	}
}
