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

package pades

import (
	"bytes"
	"crypto/x509"
	"encoding/asn1"
	"errors"
	"fmt"
	"time"

	"github.com/digitorus/pkcs7"
)

var (
	oidAttributeMessageDigest = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 4}
	oidAttributeSigningTime   = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 5}
)

// ErrDigestMismatch is returned when a signature container signs another digest than the one submitted.
var ErrDigestMismatch = errors.New("signature container does not sign the submitted digest")

// SignatureInfo describes the signer of a detached CAdES signature container.
type SignatureInfo struct {
	Subject      string
	Issuer       string
	SerialNumber string
	// SigningTime is the claimed signing time from the signed attributes, if present.
	SigningTime *time.Time
	// Certificate is the signer certificate, nil when the container doesn't include it.
	Certificate *x509.Certificate
}

// InspectSignature parses a detached CAdES signature container and checks that its signed
// messageDigest attribute equals digest. Certificate chain and signature validation are not
// performed here.
func InspectSignature(container []byte, digest []byte) (*SignatureInfo, error) {
	p7, err := pkcs7.Parse(container)
	if err != nil {
		return nil, fmt.Errorf("unable to parse signature container: %w", err)
	}

	var signedDigest []byte
	if err := p7.UnmarshalSignedAttribute(oidAttributeMessageDigest, &signedDigest); err != nil {
		return nil, fmt.Errorf("signature container has no messageDigest attribute: %w", err)
	}
	if !bytes.Equal(signedDigest, digest) {
		return nil, ErrDigestMismatch
	}

	info := &SignatureInfo{}
	if cert := p7.GetOnlySigner(); cert != nil {
		info.Subject = cert.Subject.String()
		info.Issuer = cert.Issuer.String()
		info.SerialNumber = cert.SerialNumber.String()
		info.Certificate = cert
	}

	var signingTime time.Time
	if err := p7.UnmarshalSignedAttribute(oidAttributeSigningTime, &signingTime); err == nil {
		info.SigningTime = &signingTime
	}
	return info, nil
}
