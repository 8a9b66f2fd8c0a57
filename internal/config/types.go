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

// Package config provides the portal's configuration schema.
package config

// Config represents the root structure of the YAML configuration file.
// This struct is used to unmarshal configuration data from Viper.
type Config struct {
	NATS   NATS   `mapstructure:"nats"`
	Bus    Bus    `mapstructure:"bus"`
	Portal Portal `mapstructure:"portal"`
	API    API    `mapstructure:"api"`
	// Debug enable or disable debug option set from CLI.
	Debug bool `mapstructure:"debug"`
}

// NATS configuration settings.
type NATS struct {
	Server     NATSServer     `mapstructure:"server,omitempty"`
	Connection NATSConnection `mapstructure:"connection,omitempty"`
}

// NATSServer configuration settings for the embedded NATS server.
type NATSServer struct {
	// Host the server will bind to.
	Host string `mapstructure:"host"`
	// Port the server will bind to.
	Port int `mapstructure:"port"`
	// StoreDir the directory for JetStream file storage.
	StoreDir string `mapstructure:"store_dir"`
}

// NATSAuth holds client-side authentication settings for connecting to NATS.
type NATSAuth struct {
	// Type is the auth method: "none", "user_pass", or "nkey".
	Type string `mapstructure:"type"`
	// Username for user_pass auth.
	Username string `mapstructure:"username"`
	// Password for user_pass auth.
	Password string `mapstructure:"password"`
	// NKeyFile path to the NKey seed file for nkey auth.
	NKeyFile string `mapstructure:"nkey_file"`
}

// NATSConnection is a reusable NATS connection configuration block.
type NATSConnection struct {
	// Host the NATS server hostname.
	Host string `mapstructure:"host"`
	// Port the NATS server port.
	Port int `mapstructure:"port"`
	// ClientName the NATS client name for identification.
	ClientName string `mapstructure:"client_name"`
	// Auth holds client-side authentication configuration.
	Auth NATSAuth `mapstructure:"auth,omitempty"`
}

// Bus configuration for the introspection service the portal consumes.
type Bus struct {
	// PIDSubject is the request subject answering peer process-id queries.
	PIDSubject string `mapstructure:"pid_subject"`
	// EventsSubject is the broadcast subject for name-ownership changes.
	EventsSubject string `mapstructure:"events_subject"`
}

// Portal configuration settings.
type Portal struct {
	// Bucket is the KV bucket name holding document entries.
	Bucket string `mapstructure:"bucket"`
	// LookupTimeout bounds the per-peer credential query. e.g. "30s"
	LookupTimeout string `mapstructure:"lookup_timeout"`
	// ProcRoot overrides the process accounting root (default /proc).
	ProcRoot string `mapstructure:"proc_root"`
	// Janitor settings for the stale-document sweep.
	Janitor Janitor `mapstructure:"janitor,omitempty"`
}

// Janitor configuration for the scheduled stale-document sweep.
type Janitor struct {
	// Enabled enables or disables the sweep.
	Enabled bool `mapstructure:"enabled"`
	// Schedule is a cron expression. e.g. "@hourly"
	Schedule string `mapstructure:"schedule"`
}

// API configuration settings for the admin HTTP surface.
type API struct {
	// Port the server will bind to.
	Port int `mapstructure:"port"`
	// Security contains security-related configuration for the server.
	Security APISecurity `mapstructure:"security"`
}

// APISecurity represents security-related settings for the admin API.
type APISecurity struct {
	// SigningKey is the key used for signing or validating tokens.
	SigningKey string `mapstructure:"signing_key" validate:"required"`
	// CORS contains cross-origin settings for the server.
	CORS CORS `mapstructure:"cors,omitempty"`
	// Roles maps custom role names to permission lists. Custom roles
	// shadow built-in roles of the same name.
	Roles map[string][]string `mapstructure:"roles,omitempty"`
}

// CORS represents cross-origin resource sharing settings.
type CORS struct {
	// AllowOrigins lists the origins allowed to call the API.
	AllowOrigins []string `mapstructure:"allow_origins"`
}
