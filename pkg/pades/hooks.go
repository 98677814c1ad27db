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

import "fmt"

const (
	// SubFilterCAdESDetached is the SubFilter required by PAdES for CAdES based signatures.
	SubFilterCAdESDetached Name = "ETSI.CAdES.detached"
	// FilterPPKLite is the preferred signature handler.
	FilterPPKLite Name = "Adobe.PPKLite"

	// ExtensionPrefix is the developer extension prefix registered by ETSI for PAdES.
	ExtensionPrefix = "ESIC"
	// ExtensionBaseVersion is the PDF version the ESIC extension is based on.
	ExtensionBaseVersion = "1.7"
	// ExtensionLevel is the ESIC extension level.
	ExtensionLevel = 2

	keySigningTime = "M"
	keySubFilter   = "SubFilter"
	keyFilter      = "Filter"
)

// UpdateSignatureDictionary sets the Filter and SubFilter entries PAdES requires.
// The signing time (M) must already be present in the dictionary.
func UpdateSignatureDictionary(dict SignatureDictionary) error {
	if !dict.Has(keySigningTime) {
		return fmt.Errorf("%w: the key M (the time of signing) shall be present in the signature dictionary", ErrPrecondition)
	}

	dict.SetName(keySubFilter, SubFilterCAdESDetached)
	dict.SetName(keyFilter, FilterPPKLite)
	return nil
}

// UpdateDocument registers the ESIC extension in the document catalog.
// See ETSI EN 319 142-1, 5.6 Extension dictionary.
func UpdateDocument(catalog Catalog) error {
	catalog.SetExtension(ExtensionPrefix, ExtensionBaseVersion, ExtensionLevel)
	return nil
}

// DefaultHooks returns the hooks an engine needs to produce a PAdES baseline signature.
func DefaultHooks() Hooks {
	return Hooks{
		SignatureDictionary: UpdateSignatureDictionary,
		Document:            UpdateDocument,
	}
}

// Dictionary is a simple SignatureDictionary backed by a map. Name objects are stored as Name.
type Dictionary map[string]interface{}

// Has returns true if the key is present.
func (d Dictionary) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// SetName stores the name under key.
func (d Dictionary) SetName(key string, value Name) {
	d[key] = value
}

// Extension is an entry of the catalog Extensions dictionary.
type Extension struct {
	BaseVersion string
	Level       int
}

// Extensions is a Catalog backed by a map of prefix to extension.
type Extensions map[string]Extension

// SetExtension stores the extension, replacing an existing one with the same prefix.
func (e Extensions) SetExtension(prefix string, baseVersion string, level int) {
	e[prefix] = Extension{BaseVersion: baseVersion, Level: level}
}
