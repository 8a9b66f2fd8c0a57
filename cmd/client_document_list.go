// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cmd

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/retr0h/docport/internal/cli"
)

// clientDocumentListCmd represents the clientDocumentList command.
var clientDocumentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents visible to this connection",
	Long: `List the document ids visible to this connection. The host sees every
document; sandboxed callers see only documents they can read.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		ids, err := docClient.List(ctx)
		if err != nil {
			cli.LogFatal(logger, "failed to list documents", err)
		}

		if jsonOutput {
			resultJSON, _ := json.Marshal(map[string]any{"ids": ids})
			logger.Info("documents list", slog.String("response", string(resultJSON)))
			return
		}

		rows := make([][]string, 0, len(ids))
		for _, id := range ids {
			info, err := docClient.Info(ctx, id)
			if err != nil {
				// Entries can race deletion between List and Info.
				logger.Debug(
					"skipping document",
					slog.String("id", id),
					slog.String("error", err.Error()),
				)
				continue
			}

			age := ""
			if created, err := time.Parse(time.RFC3339, info.Created); err == nil {
				age = cli.FormatAge(time.Since(created))
			}

			rows = append(rows, []string{
				info.ID,
				info.Path,
				strings.Join(cli.FormatGrants(info.Grants), " "),
				age,
			})
		}

		cli.PrintCompactTable([]cli.Section{
			{
				Title:   "Documents",
				Headers: []string{"ID", "PATH", "GRANTS", "AGE"},
				Rows:    rows,
			},
		})

		logger.Info("documents listed successfully", slog.Int("total", len(ids)))
	},
}

func init() {
	clientDocumentCmd.AddCommand(clientDocumentListCmd)
}
