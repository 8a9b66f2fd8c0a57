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
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/retr0h/docport/internal/cli"
	"github.com/retr0h/docport/internal/permission"
)

// clientDocumentRevokeCmd represents the clientDocumentRevoke command.
var clientDocumentRevokeCmd = &cobra.Command{
	Use:   "revoke",
	Short: "Revoke document permissions from an app",
	Long: `Revoke permission tokens on a document from an app id. An app may
revoke its own grants; revoking another app's grants requires
grant-permissions.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		id, _ := cmd.Flags().GetString("id")
		appID, _ := cmd.Flags().GetString("app-id")
		permissions, _ := cmd.Flags().GetStringSlice("permissions")

		if err := docClient.Revoke(ctx, id, appID, permissions); err != nil {
			cli.LogFatal(logger, "failed to revoke permissions", err)
		}

		logger.Info(
			"permissions revoked",
			slog.String("id", id),
			slog.String("app_id", appID),
			slog.String("permissions", strings.Join(permissions, ",")),
		)
	},
}

func init() {
	clientDocumentCmd.AddCommand(clientDocumentRevokeCmd)

	clientDocumentRevokeCmd.PersistentFlags().
		StringP("id", "", "", "Document ID")
	clientDocumentRevokeCmd.PersistentFlags().
		StringP("app-id", "a", "", "App ID losing the grant")
	clientDocumentRevokeCmd.PersistentFlags().
		StringSliceP("permissions", "p", []string{},
			fmt.Sprintf("Permissions to revoke (allowed: %s)",
				strings.Join(permission.AllTokens, ", ")))

	_ = clientDocumentRevokeCmd.MarkPersistentFlagRequired("id")
	_ = clientDocumentRevokeCmd.MarkPersistentFlagRequired("app-id")
	_ = clientDocumentRevokeCmd.MarkPersistentFlagRequired("permissions")
}
