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

package test

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

const (
	// ClientID is the client id the Provider accepts.
	ClientID = "test-client"
	// ClientSecret is the secret the Provider accepts.
	ClientSecret = "test-secret"

	preparePath  = "/api/signatures/prepare-files-for-signing"
	downloadPath = "/api/signatures/download-signed-file"
)

// Request is a request received by the Provider.
type Request struct {
	Path string
	Body map[string]interface{}
}

// DSSData is the pades_dss_data the Provider returns for a signed document.
type DSSData struct {
	CRLs         [][]byte `json:"crls,omitempty"`
	OCSPs        [][]byte `json:"ocsps,omitempty"`
	Certificates [][]byte `json:"certificates,omitempty"`
}

type document struct {
	fileName  string
	digest    []byte
	redirect  string
	signature []byte
	dss       *DSSData
}

// Provider is an in-memory stand-in for the eID Easy signing API. Documents stay pending until
// Sign is called for them.
type Provider struct {
	*httptest.Server

	mu        sync.Mutex
	requests  []Request
	documents map[string]*document
	counter   int
}

// NewProvider starts a Provider which is closed when the test ends.
func NewProvider(t *testing.T) *Provider {
	p := &Provider{documents: map[string]*document{}}
	p.Server = httptest.NewServer(http.HandlerFunc(p.handle))
	t.Cleanup(p.Server.Close)
	return p
}

// Requests returns all requests received so far.
func (p *Provider) Requests() []Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Request(nil), p.requests...)
}

// Digest returns the decoded file content submitted for the document.
func (p *Provider) Digest(docID string) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	if doc, ok := p.documents[docID]; ok {
		return doc.digest
	}
	return nil
}

// Redirect returns the signature_redirect submitted for the document.
func (p *Provider) Redirect(docID string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if doc, ok := p.documents[docID]; ok {
		return doc.redirect
	}
	return ""
}

// Sign completes the signing ceremony for the document, as if the end user signed it.
func (p *Provider) Sign(docID string, signature []byte, dss *DSSData) {
	p.mu.Lock()
	defer p.mu.Unlock()
	doc, ok := p.documents[docID]
	if !ok {
		panic(fmt.Sprintf("unknown document %s", docID))
	}
	doc.signature = signature
	doc.dss = dss
}

func (p *Provider) handle(w http.ResponseWriter, r *http.Request) {
	body := map[string]interface{}{}
	data, _ := ioutil.ReadAll(r.Body)
	if err := json.Unmarshal(data, &body); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests = append(p.requests, Request{Path: r.URL.Path, Body: body})

	if body["client_id"] != ClientID || body["secret"] != ClientSecret {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"status": "error", "message": "Unauthenticated."})
		return
	}

	switch r.URL.Path {
	case preparePath:
		p.prepare(w, body)
	case downloadPath:
		p.download(w, body)
	default:
		http.NotFound(w, r)
	}
}

func (p *Provider) prepare(w http.ResponseWriter, body map[string]interface{}) {
	files, _ := body["files"].([]interface{})
	if len(files) != 1 {
		writeJSON(w, http.StatusOK, map[string]interface{}{"status": "error", "message": "exactly one file expected"})
		return
	}
	file, _ := files[0].(map[string]interface{})
	content, _ := file["fileContent"].(string)
	digest, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"status": "error", "message": "fileContent is not base64"})
		return
	}
	fileName, _ := file["fileName"].(string)
	redirect, _ := body["signature_redirect"].(string)

	p.counter++
	docID := fmt.Sprintf("doc-%d", p.counter)
	p.documents[docID] = &document{fileName: fileName, digest: digest, redirect: redirect}
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "OK", "doc_id": docID})
}

func (p *Provider) download(w http.ResponseWriter, body map[string]interface{}) {
	docID, _ := body["doc_id"].(string)
	doc, ok := p.documents[docID]
	if !ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{"status": "error", "message": "Document not found"})
		return
	}
	if doc.signature == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"status": "pending"})
		return
	}
	response := map[string]interface{}{
		"status":               "OK",
		"signed_file_contents": base64.StdEncoding.EncodeToString(doc.signature),
	}
	if doc.dss != nil {
		response["pades_dss_data"] = doc.dss
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
