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

import "github.com/nuts-foundation/nuts-pades/pkg/pades"

// ProcessData links a signing attempt at eID Easy to the pending document it will complete.
// It is valid only for the document state it was created against.
type ProcessData struct {
	docID     string
	pending   pades.PendingDocument
	fieldName string
}

// NewProcessData creates a ProcessData, for instance to restore one from a session.
func NewProcessData(docID string, pending pades.PendingDocument, fieldName string) *ProcessData {
	return &ProcessData{docID: docID, pending: pending, fieldName: fieldName}
}

// DocID returns the document id eID Easy assigned.
func (p ProcessData) DocID() string {
	return p.docID
}

// PendingDocument returns the prepared document that awaits the signature.
func (p ProcessData) PendingDocument() pades.PendingDocument {
	return p.pending
}

// FieldName returns the name of the signature field.
func (p ProcessData) FieldName() string {
	return p.fieldName
}
