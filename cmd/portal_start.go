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
	"github.com/spf13/cobra"

	"github.com/retr0h/docport/internal/cli"
)

// portalStartCmd represents the portalStart command.
var portalStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the document portal and admin API",
	Long: `Start the document portal and admin API against an external NATS
server.

Use the top-level start command to run the embedded NATS server in the same
process.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		cli.ValidateDistribution(logger)

		bundle := setupPortal(logger.With("component", "portal"))
		apiServer := setupAPIServer(logger.With("component", "api"), bundle)

		components := append([]cli.Lifecycle{}, bundle.components...)
		components = append(components, apiServer)

		composite := &compositeLifecycle{components: components}

		composite.Start()
		cli.RunServer(ctx, composite, bundle.cleanups...)
	},
}

func init() {
	portalCmd.AddCommand(portalStartCmd)
}
