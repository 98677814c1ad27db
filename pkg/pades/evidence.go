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
	"crypto/x509"
	"errors"
	"fmt"
	"time"

	"github.com/digitorus/pdfsign/revocation"
	"golang.org/x/crypto/ocsp"
)

// ErrRevoked is returned when the revocation evidence reports the signer certificate as revoked.
var ErrRevoked = errors.New("signer certificate is revoked")

// Evidence holds the revocation material that belongs in the document security store (DSS) to
// allow long term validation of a signature. All entries are DER encoded.
type Evidence struct {
	CRLs         [][]byte `json:"crls"`
	OCSPs        [][]byte `json:"ocsps"`
	Certificates [][]byte `json:"certificates"`
}

// Empty returns true if the evidence holds no material at all.
func (e Evidence) Empty() bool {
	return len(e.CRLs) == 0 && len(e.OCSPs) == 0 && len(e.Certificates) == 0
}

// InfoArchival converts the CRLs and OCSP responses to an adbe-revocationInfoArchival structure,
// for engines that embed revocation data as a signed attribute instead of in the DSS.
func (e Evidence) InfoArchival() (*revocation.InfoArchival, error) {
	ia := &revocation.InfoArchival{}
	for i, crl := range e.CRLs {
		if err := ia.AddCRL(crl); err != nil {
			return nil, fmt.Errorf("unable to add CRL #%d: %w", i, err)
		}
	}
	for i, resp := range e.OCSPs {
		if err := ia.AddOCSP(resp); err != nil {
			return nil, fmt.Errorf("unable to add OCSP response #%d: %w", i, err)
		}
	}
	return ia, nil
}

// ParseCertificates parses all certificates.
func (e Evidence) ParseCertificates() ([]*x509.Certificate, error) {
	result := make([]*x509.Certificate, 0, len(e.Certificates))
	for i, der := range e.Certificates {
		cert, err := x509.ParseCertificate(der)
		if err != nil {
			return nil, fmt.Errorf("invalid certificate #%d: %w", i, err)
		}
		result = append(result, cert)
	}
	return result, nil
}

// ParseOCSPResponses parses all OCSP responses. The responder signatures are not checked
// against an issuer, that is left to the validator of the document.
func (e Evidence) ParseOCSPResponses() ([]*ocsp.Response, error) {
	result := make([]*ocsp.Response, 0, len(e.OCSPs))
	for i, der := range e.OCSPs {
		resp, err := ocsp.ParseResponse(der, nil)
		if err != nil {
			return nil, fmt.Errorf("invalid OCSP response #%d: %w", i, err)
		}
		result = append(result, resp)
	}
	return result, nil
}

// ParseCRLs parses all CRLs.
func (e Evidence) ParseCRLs() ([]*x509.RevocationList, error) {
	result := make([]*x509.RevocationList, 0, len(e.CRLs))
	for i, der := range e.CRLs {
		crl, err := x509.ParseRevocationList(der)
		if err != nil {
			return nil, fmt.Errorf("invalid CRL #%d: %w", i, err)
		}
		result = append(result, crl)
	}
	return result, nil
}

// Validate checks all entries are well-formed. When signer is given it also checks that none of the
// CRLs or OCSP responses revokes it. Signatures on CRLs and OCSP responses are not checked.
func (e Evidence) Validate(signer *x509.Certificate) error {
	if _, err := e.ParseCertificates(); err != nil {
		return err
	}
	if _, err := e.ParseCRLs(); err != nil {
		return err
	}
	responses, err := e.ParseOCSPResponses()
	if err != nil {
		return err
	}
	if signer == nil {
		return nil
	}

	ia, err := e.InfoArchival()
	if err != nil {
		return err
	}
	if ia.IsRevoked(signer) {
		return fmt.Errorf("%w: listed on CRL", ErrRevoked)
	}
	for _, resp := range responses {
		if resp.Status == ocsp.Revoked && resp.SerialNumber != nil && resp.SerialNumber.Cmp(signer.SerialNumber) == 0 {
			return fmt.Errorf("%w: OCSP response of %s", ErrRevoked, resp.ProducedAt.Format(time.RFC3339))
		}
	}
	return nil
}
