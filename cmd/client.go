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
	"github.com/spf13/viper"

	"github.com/retr0h/docport/internal/cli"
	"github.com/retr0h/docport/internal/client"
	"github.com/retr0h/docport/internal/messaging"
)

var (
	natsClient messaging.NATSClient
	docClient  *client.Client
)

// clientCmd represents the client command.
var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "The client subcommand for direct portal interaction",
	Long: `The client subcommand talks to the document portal's request subjects
over NATS. The portal resolves this connection's identity before applying any
policy; the sender name is informational on the wire and never trusted as an
app id.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		cli.ValidateDistribution(logger)

		connCfg := appConfig.NATS.Connection
		logger.Debug(
			"client configuration",
			slog.Bool("debug", appConfig.Debug),
			slog.String("connection.host", connCfg.Host),
			slog.Int("connection.port", connCfg.Port),
			slog.String("connection.client_name", connCfg.ClientName),
		)

		natsClient = connectNATS(logger)

		conn := cli.NATSConn(natsClient)
		if conn == nil {
			cli.LogFatal(logger, "failed to obtain raw NATS connection", nil)
		}

		sender, _ := cmd.Flags().GetString("sender")
		if sender == "" {
			sender = connCfg.ClientName
		}

		docClient = client.New(logger, conn, sender)
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		cli.CloseNATSClient(natsClient)
	},
}

func init() {
	rootCmd.AddCommand(clientCmd)

	clientCmd.PersistentFlags().
		StringP("nats-host", "", "localhost", "NATS server hostname")
	clientCmd.PersistentFlags().
		IntP("nats-port", "", 4222, "NATS server port")
	clientCmd.PersistentFlags().
		StringP("client-name", "", "docport-cli", "NATS client name")
	clientCmd.PersistentFlags().
		StringP("sender", "", "", "Bus connection name presented to the portal (defaults to client name)")

	_ = viper.BindPFlag("nats.connection.host", clientCmd.PersistentFlags().Lookup("nats-host"))
	_ = viper.BindPFlag("nats.connection.port", clientCmd.PersistentFlags().Lookup("nats-port"))
	_ = viper.BindPFlag(
		"nats.connection.client_name",
		clientCmd.PersistentFlags().Lookup("client-name"),
	)
}
