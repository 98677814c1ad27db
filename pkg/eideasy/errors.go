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
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoResponse is returned when revocation evidence is requested before any successful call to the provider.
var ErrNoResponse = errors.New("no successful response from eID Easy available")

// TransportError is returned when eID Easy answers with another HTTP status than 200.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("unexpected response status code (%d), response: %s", e.StatusCode, e.Body)
}

// ProviderError is returned when eID Easy answers with HTTP 200, but the response does not report
// status "OK" or can't be interpreted.
type ProviderError struct {
	// Status is the status reported by the provider, empty if there was none.
	Status string
	// Payload is the decoded response, nil if the response was not a JSON object.
	Payload map[string]interface{}
	// Raw is the response body as received.
	Raw string
}

func (e *ProviderError) Error() string {
	if e.Payload == nil {
		return fmt.Sprintf("unreadable response from eID Easy: %s", e.Raw)
	}
	payload, _ := json.Marshal(e.Payload)
	return fmt.Sprintf("eID Easy reported an error: %s", payload)
}

// Message returns the message field of the provider response, if any.
func (e *ProviderError) Message() string {
	msg, _ := e.Payload["message"].(string)
	return msg
}

// Pending returns true when the provider explicitly reported a status other than "OK". For a
// download this usually means the end user did not finish signing yet. It is up to the caller to
// decide if that is the case.
func (e *ProviderError) Pending() bool {
	return e.Status != "" && e.Status != statusOK
}
