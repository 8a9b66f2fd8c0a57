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

	"github.com/spf13/cobra"

	"github.com/retr0h/docport/internal/cli"
)

// clientDocumentAddCmd represents the clientDocumentAdd command.
var clientDocumentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a host document with the portal",
	Long: `Register an absolute host path with the portal and print the assigned
document id. Registering the same path again returns the existing id.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		path, _ := cmd.Flags().GetString("path")

		id, err := docClient.Add(ctx, path)
		if err != nil {
			cli.LogFatal(logger, "failed to add document", err)
		}

		if jsonOutput {
			resultJSON, _ := json.Marshal(map[string]string{"id": id, "path": path})
			logger.Info("document added", slog.String("response", string(resultJSON)))
			return
		}

		fmt.Println()
		cli.PrintKV("ID", id, "Path", path)
	},
}

func init() {
	clientDocumentCmd.AddCommand(clientDocumentAddCmd)

	clientDocumentAddCmd.PersistentFlags().
		StringP("path", "", "", "Absolute host path to register")

	_ = clientDocumentAddCmd.MarkPersistentFlagRequired("path")
}
