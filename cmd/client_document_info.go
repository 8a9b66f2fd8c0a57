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
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/retr0h/docport/internal/cli"
)

// clientDocumentInfoCmd represents the clientDocumentInfo command.
var clientDocumentInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show a document's path and grants",
	Long: `Show a document's host path, creation time, and per-app grants.
Requires read access to the document.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		id, _ := cmd.Flags().GetString("id")

		info, err := docClient.Info(ctx, id)
		if err != nil {
			cli.LogFatal(logger, "failed to get document", err)
		}

		if jsonOutput {
			resultJSON, _ := json.Marshal(info)
			logger.Info("document info", slog.String("response", string(resultJSON)))
			return
		}

		fmt.Println()
		cli.PrintKV("ID", info.ID, "Path", info.Path)
		cli.PrintKV("Created", info.Created)
		if len(info.Grants) > 0 {
			cli.PrintKV("Grants", strings.Join(cli.FormatGrants(info.Grants), " "))
		}
	},
}

func init() {
	clientDocumentCmd.AddCommand(clientDocumentInfoCmd)

	clientDocumentInfoCmd.PersistentFlags().
		StringP("id", "", "", "Document ID to retrieve")

	_ = clientDocumentInfoCmd.MarkPersistentFlagRequired("id")
}
