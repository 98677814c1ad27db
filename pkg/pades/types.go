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
	"context"
	"errors"
)

// ErrPrecondition is returned when the document is missing state required by the PAdES profile.
var ErrPrecondition = errors.New("PAdES precondition failed")

// PendingDocument is a partially prepared document that awaits its signature value. It is
// created by an Engine and owned by the caller until it is finalized.
type PendingDocument interface {
	// Reference identifies the pending document within the engine that created it.
	Reference() string
}

// Name is a PDF name object, written without the leading slash.
type Name string

// SignatureDictionary is the signature dictionary an engine builds before signing.
type SignatureDictionary interface {
	// Has returns true if the dictionary contains the given key.
	Has(key string) bool
	// SetName sets key to the given name object.
	SetName(key string, value Name)
}

// Catalog is the part of the document catalog that carries developer extensions.
type Catalog interface {
	// SetExtension registers an extension for the given prefix.
	SetExtension(prefix string, baseVersion string, level int)
}

// Hooks are invoked by an Engine while it prepares a document for an external signature.
type Hooks struct {
	// SignatureDictionary is called after the signature dictionary is built and before the digest is taken.
	SignatureDictionary func(dict SignatureDictionary) error
	// Document is called before the document is written.
	Document func(catalog Catalog) error
}

// Engine is the PDF toolkit that does the actual document work: it prepares a document with room
// for a signature, calculates the digest of the signable byte range, embeds a finished signature and
// maintains the document security store.
type Engine interface {
	// PreSign prepares the document for a signature in the given field and calls the hooks while doing so.
	PreSign(ctx context.Context, fieldName string, hooks Hooks) (PendingDocument, error)
	// Digest returns the SHA-256 digest of the signable byte range of the pending document.
	Digest(ctx context.Context, pending PendingDocument) ([]byte, error)
	// Finalize embeds the raw signature container in the pending document.
	Finalize(ctx context.Context, pending PendingDocument, signature []byte) error
	// UpdateDSS adds revocation evidence for the signature in the given field to the document security store.
	UpdateDSS(ctx context.Context, fieldName string, evidence Evidence) error
}
