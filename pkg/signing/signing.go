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

package signing

import (
	"context"
	"crypto/x509"
	"fmt"

	"github.com/nuts-foundation/nuts-pades/logging"
	"github.com/nuts-foundation/nuts-pades/pkg/eideasy"
	"github.com/nuts-foundation/nuts-pades/pkg/pades"
	"github.com/sirupsen/logrus"
)

// Service drives a complete signature: the engine prepares the document, eID Easy collects the
// signature of the end user and the engine embeds it.
type Service struct {
	Engine pades.Engine
	Client eideasy.Client
	// VerifyContainer checks the downloaded signature container signs the digest of the pending document.
	VerifyContainer bool
	// EmbedEvidence adds the revocation evidence eID Easy returns to the DSS of the document.
	EmbedEvidence bool
}

// Result is the outcome of a completed signature.
type Result struct {
	Signature []byte
	Evidence  *pades.Evidence
	// Signer is only set when the container was verified.
	Signer *pades.SignatureInfo
}

// Start prepares the document for a signature in fieldName and submits its digest to eID Easy.
// The end user must be sent to eID Easy (widget or signing page) with the returned document id.
func (s Service) Start(ctx context.Context, fieldName string, filename string, redirect string) (*eideasy.ProcessData, error) {
	pending, err := s.Engine.PreSign(ctx, fieldName, pades.DefaultHooks())
	if err != nil {
		return nil, fmt.Errorf("unable to prepare document: %w", err)
	}
	digest, err := s.Engine.Digest(ctx, pending)
	if err != nil {
		return nil, fmt.Errorf("unable to calculate digest: %w", err)
	}
	pd, err := s.Client.Prepare(ctx, digest, filename, redirect, pending, fieldName)
	if err != nil {
		return nil, err
	}
	logging.Log().WithFields(logrus.Fields{
		"docId":   pd.DocID(),
		"field":   fieldName,
		"pending": pending.Reference(),
	}).Info("Signature requested at eID Easy")
	return pd, nil
}

// Complete downloads the signature for pd and embeds it in the pending document. A *eideasy.ProviderError
// is returned unchanged while the end user did not finish signing, so Complete can be retried.
// Revocation evidence is checked before anything is embedded.
func (s Service) Complete(ctx context.Context, pd *eideasy.ProcessData) (*Result, error) {
	signature, err := s.Client.FetchSignature(ctx, pd.DocID())
	if err != nil {
		return nil, err
	}
	result := &Result{Signature: signature}

	var signer *x509.Certificate
	if s.VerifyContainer {
		digest, err := s.Engine.Digest(ctx, pd.PendingDocument())
		if err != nil {
			return nil, fmt.Errorf("unable to calculate digest: %w", err)
		}
		if result.Signer, err = pades.InspectSignature(signature, digest); err != nil {
			return nil, err
		}
		signer = result.Signer.Certificate
	}

	if s.EmbedEvidence {
		evidence, err := s.Client.RevocationEvidence()
		if err != nil {
			return nil, fmt.Errorf("unable to read revocation evidence: %w", err)
		}
		if err := evidence.Validate(signer); err != nil {
			return nil, fmt.Errorf("invalid revocation evidence: %w", err)
		}
		result.Evidence = evidence
	}

	if err := s.Engine.Finalize(ctx, pd.PendingDocument(), signature); err != nil {
		return nil, fmt.Errorf("unable to embed signature: %w", err)
	}

	if result.Evidence != nil && !result.Evidence.Empty() {
		if err := s.Engine.UpdateDSS(ctx, pd.FieldName(), *result.Evidence); err != nil {
			return nil, fmt.Errorf("unable to update DSS: %w", err)
		}
	}

	logging.Log().WithFields(logrus.Fields{
		"docId": pd.DocID(),
		"field": pd.FieldName(),
	}).Info("Signature embedded")
	return result, nil
}
