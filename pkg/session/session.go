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

package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/nuts-foundation/nuts-pades/pkg/pades"
)

// ErrSessionNotFound is returned when the requested session does not exist (anymore).
var ErrSessionNotFound = errors.New("signing session not found")

// Status of a signing session.
type Status string

const (
	// StatusPending means the end user did not finish signing at eID Easy yet.
	StatusPending Status = "pending"
	// StatusSigned means the signature has been downloaded.
	StatusSigned Status = "signed"
	// StatusFailed means the signature was downloaded but rejected.
	StatusFailed Status = "failed"
)

// Session is a signing ceremony in progress, from prepare until the signature is picked up.
type Session struct {
	ID        string
	DocID     string
	FieldName string
	Filename  string
	// Digest is the digest submitted to eID Easy.
	Digest    []byte
	Language  string
	CreatedAt time.Time
	Status    Status
	// Signature is the CAdES signature container, set when Status is StatusSigned.
	Signature []byte
	// Evidence is the DSS data that came with the signature, if any.
	Evidence *pades.Evidence
	// Signer describes the signer, set when Status is StatusSigned.
	Signer *pades.SignatureInfo
	// Reason explains why the session failed.
	Reason string
}

// Store keeps sessions.
type Store interface {
	// Put stores the session, replacing a session with the same ID.
	Put(session Session) error
	// Update replaces an existing session. It returns ErrSessionNotFound when the session was deleted or purged.
	Update(session Session) error
	// Get returns a copy of the session or ErrSessionNotFound.
	Get(id string) (*Session, error)
	// Delete removes the session. Deleting an unknown session is not an error.
	Delete(id string) error
	// Purge removes all sessions created before the given time and returns how many were removed.
	Purge(before time.Time) int
}

// NewID returns a random, unguessable session id.
func NewID() string {
	return uuid.New().String()
}
