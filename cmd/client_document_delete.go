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
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/retr0h/docport/internal/cli"
)

// clientDocumentDeleteCmd represents the clientDocumentDelete command.
var clientDocumentDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove a document from the portal",
	Long: `Remove a document from the portal. The host file itself is untouched.
Sandboxed callers need the delete permission on the document.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		id, _ := cmd.Flags().GetString("id")

		if err := docClient.Delete(ctx, id); err != nil {
			cli.LogFatal(logger, "failed to delete document", err)
		}

		logger.Info("document deleted", slog.String("id", id))
	},
}

func init() {
	clientDocumentCmd.AddCommand(clientDocumentDeleteCmd)

	clientDocumentDeleteCmd.PersistentFlags().
		StringP("id", "", "", "Document ID to delete")

	_ = clientDocumentDeleteCmd.MarkPersistentFlagRequired("id")
}
