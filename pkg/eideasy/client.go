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
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/nuts-foundation/nuts-pades/logging"
	"github.com/nuts-foundation/nuts-pades/pkg/pades"
	"github.com/sirupsen/logrus"
)

const (
	preparePath  = "/api/signatures/prepare-files-for-signing"
	downloadPath = "/api/signatures/download-signed-file"
	signPagePath = "/sign_contract_external"

	statusOK      = "OK"
	mimeTypePDF   = "application/pdf"
	containerType = "cades"
)

// Client is the eID Easy remote signing API as needed to sign a PDF document.
type Client interface {
	// Prepare submits the digest of the pending document for signing. The end user is sent to
	// redirect after signing at eID Easy.
	Prepare(ctx context.Context, digest []byte, filename string, redirect string, pending pades.PendingDocument, fieldName string) (*ProcessData, error)
	// FetchSignature downloads the signature container for the document. It returns a
	// *ProviderError when the document is not signed (yet).
	FetchSignature(ctx context.Context, docID string) ([]byte, error)
	// RevocationEvidence returns the DSS data of the last successful response.
	RevocationEvidence() (*pades.Evidence, error)
	// SigningPageURL returns the eID Easy hosted page on which the end user signs the document.
	SigningPageURL(docID string, language string) string
	// ClientID returns the configured client id.
	ClientID() string
	// Sandbox returns true if the test environment is used.
	Sandbox() bool
}

// HTTPClient talks to eID Easy over HTTPS. Only the last successful response is kept, so a
// HTTPClient should be used for one signing flow at a time.
type HTTPClient struct {
	baseURL      string
	clientID     string
	clientSecret string
	sandbox      bool
	http         *http.Client

	mutex        sync.Mutex
	lastResponse map[string]interface{}
}

// NewClient creates a HTTPClient from the given config.
func NewClient(config Config) *HTTPClient {
	return &HTTPClient{
		baseURL:      strings.TrimRight(config.baseURL(), "/"),
		clientID:     config.ClientID,
		clientSecret: config.ClientSecret,
		sandbox:      config.Sandbox,
		http:         config.NewHTTPClient(),
	}
}

type prepareFile struct {
	FileName    string `json:"fileName"`
	MimeType    string `json:"mimeType"`
	FileContent string `json:"fileContent"`
}

type prepareRequest struct {
	ClientID            string        `json:"client_id"`
	Secret              string        `json:"secret"`
	SignatureRedirect   string        `json:"signature_redirect"`
	NoDownload          bool          `json:"nodownload"`
	NoEmails            bool          `json:"noemails"`
	HidePreviewDownload bool          `json:"hide_preview_download"`
	ContainerType       string        `json:"container_type"`
	Files               []prepareFile `json:"files"`
}

type downloadRequest struct {
	ClientID string `json:"client_id"`
	Secret   string `json:"secret"`
	DocID    string `json:"doc_id"`
}

// Prepare submits the digest as base64 encoded file content.
func (c *HTTPClient) Prepare(ctx context.Context, digest []byte, filename string, redirect string, pending pades.PendingDocument, fieldName string) (*ProcessData, error) {
	request := prepareRequest{
		ClientID:            c.clientID,
		Secret:              c.clientSecret,
		SignatureRedirect:   redirect,
		NoDownload:          true,
		NoEmails:            true,
		HidePreviewDownload: true,
		ContainerType:       containerType,
		Files: []prepareFile{{
			FileName:    filename,
			MimeType:    mimeTypePDF,
			FileContent: base64.StdEncoding.EncodeToString(digest),
		}},
	}

	payload, err := c.post(ctx, preparePath, request)
	if err != nil {
		return nil, fmt.Errorf("error while preparing files for signing: %w", err)
	}

	docID, ok := payload["doc_id"].(string)
	if !ok || docID == "" {
		return nil, fmt.Errorf("error while preparing files for signing: %w", &ProviderError{Status: statusOK, Payload: payload})
	}
	c.store(payload)

	logging.Log().WithField("docId", docID).Debug("Prepared document at eID Easy")
	return NewProcessData(docID, pending, fieldName), nil
}

// FetchSignature performs a single download attempt, there's no retry when the document isn't signed yet.
func (c *HTTPClient) FetchSignature(ctx context.Context, docID string) ([]byte, error) {
	request := downloadRequest{
		ClientID: c.clientID,
		Secret:   c.clientSecret,
		DocID:    docID,
	}

	payload, err := c.post(ctx, downloadPath, request)
	if err != nil {
		return nil, fmt.Errorf("error while downloading signed file: %w", err)
	}

	encoded, ok := payload["signed_file_contents"].(string)
	if !ok || encoded == "" {
		return nil, fmt.Errorf("error while downloading signed file: %w", &ProviderError{Status: statusOK, Payload: payload})
	}
	signature, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("error while downloading signed file: invalid signed_file_contents: %w", err)
	}
	c.store(payload)

	logging.Log().WithField("docId", docID).Debugf("Downloaded signature from eID Easy (%d bytes)", len(signature))
	return signature, nil
}

// RevocationEvidence decodes pades_dss_data from the last successful response. Missing lists are
// returned empty.
func (c *HTTPClient) RevocationEvidence() (*pades.Evidence, error) {
	c.mutex.Lock()
	last := c.lastResponse
	c.mutex.Unlock()

	if last == nil {
		return nil, ErrNoResponse
	}

	dss, _ := last["pades_dss_data"].(map[string]interface{})
	evidence := &pades.Evidence{}
	var err error
	if evidence.CRLs, err = decodeList(dss, "crls"); err != nil {
		return nil, err
	}
	if evidence.OCSPs, err = decodeList(dss, "ocsps"); err != nil {
		return nil, err
	}
	if evidence.Certificates, err = decodeList(dss, "certificates"); err != nil {
		return nil, err
	}
	return evidence, nil
}

// SigningPageURL returns the URL of the eID Easy hosted signing page.
func (c *HTTPClient) SigningPageURL(docID string, language string) string {
	query := url.Values{}
	query.Set("client_id", c.clientID)
	query.Set("doc_id", docID)
	if language != "" {
		query.Set("lang", language)
	}
	return c.baseURL + signPagePath + "?" + query.Encode()
}

// ClientID returns the configured client id.
func (c *HTTPClient) ClientID() string {
	return c.clientID
}

// Sandbox returns true if the client was configured for the test environment.
func (c *HTTPClient) Sandbox() bool {
	return c.sandbox
}

func (c *HTTPClient) store(payload map[string]interface{}) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.lastResponse = payload
}

// post sends body as JSON and returns the decoded response, but only if the provider reported status OK.
func (c *HTTPClient) post(ctx context.Context, path string, body interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	log := logging.Log().WithFields(logrus.Fields{"endpoint": path, "clientId": c.clientID})
	log.Debug("Calling eID Easy")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	log.WithField("status", resp.StatusCode).Debug("eID Easy responded")

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	payload := map[string]interface{}{}
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, &ProviderError{Raw: string(respBody)}
	}
	status, _ := payload["status"].(string)
	if status != statusOK {
		return nil, &ProviderError{Status: status, Payload: payload, Raw: string(respBody)}
	}
	return payload, nil
}

func decodeList(dss map[string]interface{}, key string) ([][]byte, error) {
	result := [][]byte{}
	entries, _ := dss[key].([]interface{})
	for i, entry := range entries {
		encoded, ok := entry.(string)
		if !ok {
			return nil, fmt.Errorf("pades_dss_data.%s[%d] is not a string", key, i)
		}
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("pades_dss_data.%s[%d]: %w", key, i, err)
		}
		result = append(result, decoded)
	}
	return result, nil
}

// IsPending returns true if err is a ProviderError that reports a status other than OK.
func IsPending(err error) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr) && providerErr.Pending()
}
