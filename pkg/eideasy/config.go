/*
 * Nuts PAdES
 * Copyright (C) 2020. Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package eideasy

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/nuts-foundation/nuts-pades/logging"
)

const (
	// ProductionURL is the base URL of the eID Easy production environment.
	ProductionURL = "https://id.eideasy.com"
	// SandboxURL is the base URL of the eID Easy test environment.
	SandboxURL = "https://test.eideasy.com"

	// DefaultTimeout is used when no timeout is configured.
	DefaultTimeout = 30 * time.Second
)

// Config holds the settings needed to talk to eID Easy.
type Config struct {
	// ClientID and ClientSecret are the API credentials issued by eID Easy.
	ClientID     string
	ClientSecret string
	// Sandbox selects the test environment.
	Sandbox bool
	// BaseURL overrides the environment selected by Sandbox when not empty.
	BaseURL string
	// Timeout for a single request, DefaultTimeout when zero.
	Timeout time.Duration
	// RetryMax is the number of times a request is retried on connection errors and 5xx responses.
	// Zero disables retries.
	RetryMax int
	// HTTPClient is used as is when set. Timeout and RetryMax are ignored in that case.
	HTTPClient *http.Client
}

func (c Config) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	if c.Sandbox {
		return SandboxURL
	}
	return ProductionURL
}

// NewHTTPClient returns HTTPClient when set, or a new client honouring Timeout and RetryMax.
func (c Config) NewHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if c.RetryMax <= 0 {
		return &http.Client{Timeout: timeout}
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = c.RetryMax
	rc.Logger = retryLogger{}
	client := rc.StandardClient()
	client.Timeout = timeout
	return client
}

// retryLogger routes retryablehttp output to the module logger at debug level.
type retryLogger struct{}

func (retryLogger) Printf(format string, args ...interface{}) {
	logging.Log().Debugf(format, args...)
}
