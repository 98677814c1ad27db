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
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// ErrInvalidState is returned when a state token is forged, expired or issued for another session.
var ErrInvalidState = errors.New("invalid state")

// StateSigner issues and verifies the state parameter of the redirect URL eID Easy sends the end user
// to after signing. It binds the redirect to a single session.
type StateSigner struct {
	key      []byte
	validity time.Duration
}

// NewStateSigner creates a StateSigner using HMAC-SHA256 with the given key.
func NewStateSigner(key []byte, validity time.Duration) *StateSigner {
	return &StateSigner{key: key, validity: validity}
}

// Sign returns a state token for the session.
func (s StateSigner) Sign(sessionID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   sessionID,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.validity).Unix(),
	})
	return token.SignedString(s.key)
}

// Verify checks the state token was issued by this signer for the session and did not expire.
func (s StateSigner) Verify(state string, sessionID string) error {
	parser := &jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Name}}
	claims := &jwt.StandardClaims{}
	_, err := parser.ParseWithClaims(state, claims, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if claims.Subject != sessionID {
		return fmt.Errorf("%w: issued for another session", ErrInvalidState)
	}
	return nil
}
