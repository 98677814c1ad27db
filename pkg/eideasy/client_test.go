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
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/nuts-foundation/nuts-pades/pkg/pades"
	"github.com/nuts-foundation/nuts-pades/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pendingDocument string

func (p pendingDocument) Reference() string {
	return string(p)
}

func newTestClient(t *testing.T) (*HTTPClient, *test.Provider) {
	provider := test.NewProvider(t)
	client := NewClient(Config{
		ClientID:     test.ClientID,
		ClientSecret: test.ClientSecret,
		BaseURL:      provider.URL,
	})
	return client, provider
}

func stubClient(t *testing.T, status int, body string) *HTTPClient {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return NewClient(Config{ClientID: "id", ClientSecret: "secret", BaseURL: server.URL})
}

func TestConfig_baseURL(t *testing.T) {
	assert.Equal(t, "https://id.eideasy.com", Config{}.baseURL())
	assert.Equal(t, "https://test.eideasy.com", Config{Sandbox: true}.baseURL())
	assert.Equal(t, "http://localhost:1323", Config{Sandbox: true, BaseURL: "http://localhost:1323"}.baseURL())
}

func TestConfig_NewHTTPClient(t *testing.T) {
	t.Run("default timeout", func(t *testing.T) {
		assert.Equal(t, DefaultTimeout, Config{}.NewHTTPClient().Timeout)
	})
	t.Run("with retries", func(t *testing.T) {
		client := Config{RetryMax: 2, Timeout: time.Second}.NewHTTPClient()
		assert.Equal(t, time.Second, client.Timeout)
		assert.IsType(t, &retryablehttp.RoundTripper{}, client.Transport)
	})
	t.Run("given client", func(t *testing.T) {
		given := &http.Client{}
		assert.Same(t, given, Config{HTTPClient: given, RetryMax: 3}.NewHTTPClient())
	})
}

func TestHTTPClient_Prepare(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		client, provider := newTestClient(t)

		pd, err := client.Prepare(ctx, []byte("abc"), "report.pdf", "https://example.com/done", pendingDocument("tmp-1"), "Signature1")

		require.NoError(t, err)
		assert.Equal(t, "doc-1", pd.DocID())
		assert.Equal(t, "Signature1", pd.FieldName())
		assert.Equal(t, "tmp-1", pd.PendingDocument().Reference())
		assert.Equal(t, []byte("abc"), provider.Digest("doc-1"))
		assert.Equal(t, "https://example.com/done", provider.Redirect("doc-1"))
	})

	t.Run("request body", func(t *testing.T) {
		client, provider := newTestClient(t)

		_, err := client.Prepare(ctx, []byte("abc"), "report.pdf", "https://example.com/done", nil, "Signature1")
		require.NoError(t, err)

		requests := provider.Requests()
		require.Len(t, requests, 1)
		body := requests[0].Body
		assert.Equal(t, "/api/signatures/prepare-files-for-signing", requests[0].Path)
		assert.Equal(t, test.ClientID, body["client_id"])
		assert.Equal(t, test.ClientSecret, body["secret"])
		assert.Equal(t, true, body["nodownload"])
		assert.Equal(t, true, body["noemails"])
		assert.Equal(t, true, body["hide_preview_download"])
		assert.Equal(t, "cades", body["container_type"])
		assert.Equal(t, []interface{}{map[string]interface{}{
			"fileName":    "report.pdf",
			"mimeType":    "application/pdf",
			"fileContent": "YWJj",
		}}, body["files"])
	})

	t.Run("every call gets a new document id", func(t *testing.T) {
		client, _ := newTestClient(t)

		pd1, _ := client.Prepare(ctx, []byte("abc"), "a.pdf", "", nil, "Signature1")
		pd2, _ := client.Prepare(ctx, []byte("abc"), "a.pdf", "", nil, "Signature1")

		assert.NotEqual(t, pd1.DocID(), pd2.DocID())
	})

	t.Run("response is cached", func(t *testing.T) {
		client, _ := newTestClient(t)

		_, err := client.Prepare(ctx, []byte("abc"), "a.pdf", "", nil, "Signature1")
		require.NoError(t, err)

		evidence, err := client.RevocationEvidence()
		require.NoError(t, err)
		assert.True(t, evidence.Empty())
	})

	t.Run("error - wrong credentials", func(t *testing.T) {
		provider := test.NewProvider(t)
		client := NewClient(Config{ClientID: test.ClientID, ClientSecret: "wrong", BaseURL: provider.URL})

		_, err := client.Prepare(ctx, []byte("abc"), "a.pdf", "", nil, "Signature1")

		var transportErr *TransportError
		require.True(t, errors.As(err, &transportErr))
		assert.Equal(t, http.StatusUnauthorized, transportErr.StatusCode)
		assert.Contains(t, transportErr.Body, "Unauthenticated")
	})

	t.Run("error - status is not OK", func(t *testing.T) {
		client := stubClient(t, http.StatusOK, `{"status":"error","message":"Invalid file"}`)

		_, err := client.Prepare(ctx, []byte("abc"), "a.pdf", "", nil, "Signature1")

		var providerErr *ProviderError
		require.True(t, errors.As(err, &providerErr))
		assert.Equal(t, "error", providerErr.Status)
		assert.Equal(t, "Invalid file", providerErr.Message())
		_, err = client.RevocationEvidence()
		assert.Equal(t, ErrNoResponse, err)
	})

	t.Run("error - status missing", func(t *testing.T) {
		client := stubClient(t, http.StatusOK, `{"doc_id":"D1"}`)

		_, err := client.Prepare(ctx, []byte("abc"), "a.pdf", "", nil, "Signature1")

		var providerErr *ProviderError
		require.True(t, errors.As(err, &providerErr))
		assert.Equal(t, "", providerErr.Status)
		assert.False(t, providerErr.Pending())
	})

	t.Run("error - doc_id missing", func(t *testing.T) {
		client := stubClient(t, http.StatusOK, `{"status":"OK"}`)

		_, err := client.Prepare(ctx, []byte("abc"), "a.pdf", "", nil, "Signature1")

		var providerErr *ProviderError
		assert.True(t, errors.As(err, &providerErr))
	})

	t.Run("error - no JSON", func(t *testing.T) {
		client := stubClient(t, http.StatusOK, `<html>maintenance</html>`)

		_, err := client.Prepare(ctx, []byte("abc"), "a.pdf", "", nil, "Signature1")

		var providerErr *ProviderError
		require.True(t, errors.As(err, &providerErr))
		assert.Nil(t, providerErr.Payload)
		assert.Contains(t, err.Error(), "maintenance")
	})

	t.Run("error - server error", func(t *testing.T) {
		client := stubClient(t, http.StatusInternalServerError, `oops`)

		_, err := client.Prepare(ctx, []byte("abc"), "a.pdf", "", nil, "Signature1")

		assert.EqualError(t, err, "error while preparing files for signing: unexpected response status code (500), response: oops")
	})

	t.Run("error - cancelled context", func(t *testing.T) {
		client, provider := newTestClient(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := client.Prepare(cancelled, []byte("abc"), "a.pdf", "", nil, "Signature1")

		assert.True(t, errors.Is(err, context.Canceled))
		assert.Empty(t, provider.Requests())
	})
}

func TestHTTPClient_FetchSignature(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		client, provider := newTestClient(t)
		pd, _ := client.Prepare(ctx, []byte("abc"), "a.pdf", "", nil, "Signature1")
		provider.Sign(pd.DocID(), []byte("container"), nil)

		signature, err := client.FetchSignature(ctx, pd.DocID())

		require.NoError(t, err)
		assert.Equal(t, []byte("container"), signature)
		requests := provider.Requests()
		assert.Equal(t, "/api/signatures/download-signed-file", requests[1].Path)
		assert.Equal(t, map[string]interface{}{"client_id": test.ClientID, "secret": test.ClientSecret, "doc_id": pd.DocID()}, requests[1].Body)
	})

	t.Run("ok - decodes exactly", func(t *testing.T) {
		client := stubClient(t, http.StatusOK, `{"status":"OK","signed_file_contents":"AAEC"}`)

		signature, err := client.FetchSignature(ctx, "D1")

		require.NoError(t, err)
		assert.Equal(t, []byte{0, 1, 2}, signature)
	})

	t.Run("not signed yet", func(t *testing.T) {
		client, _ := newTestClient(t)
		pd, _ := client.Prepare(ctx, []byte("abc"), "a.pdf", "", nil, "Signature1")

		_, err := client.FetchSignature(ctx, pd.DocID())

		var providerErr *ProviderError
		require.True(t, errors.As(err, &providerErr))
		assert.Equal(t, "pending", providerErr.Status)
		assert.True(t, providerErr.Pending())
		assert.True(t, IsPending(err))
	})

	t.Run("unknown document", func(t *testing.T) {
		client, _ := newTestClient(t)

		_, err := client.FetchSignature(ctx, "unknown")

		assert.True(t, IsPending(err))
		assert.Contains(t, err.Error(), "Document not found")
	})

	t.Run("error - invalid base64", func(t *testing.T) {
		client := stubClient(t, http.StatusOK, `{"status":"OK","signed_file_contents":"not base64!"}`)

		_, err := client.FetchSignature(ctx, "D1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid signed_file_contents")
		_, err = client.RevocationEvidence()
		assert.Equal(t, ErrNoResponse, err)
	})

	t.Run("error - signed_file_contents missing", func(t *testing.T) {
		client := stubClient(t, http.StatusOK, `{"status":"OK"}`)

		signature, err := client.FetchSignature(ctx, "D1")

		assert.Nil(t, signature)
		var providerErr *ProviderError
		require.True(t, errors.As(err, &providerErr))
		assert.Equal(t, "OK", providerErr.Status)
		assert.False(t, IsPending(err))
		_, err = client.RevocationEvidence()
		assert.Equal(t, ErrNoResponse, err)
	})

	t.Run("error - signed_file_contents empty", func(t *testing.T) {
		client := stubClient(t, http.StatusOK, `{"status":"OK","signed_file_contents":""}`)

		_, err := client.FetchSignature(ctx, "D1")

		var providerErr *ProviderError
		assert.True(t, errors.As(err, &providerErr))
	})

	t.Run("error - signed_file_contents not a string", func(t *testing.T) {
		client := stubClient(t, http.StatusOK, `{"status":"OK","signed_file_contents":42}`)

		_, err := client.FetchSignature(ctx, "D1")

		var providerErr *ProviderError
		assert.True(t, errors.As(err, &providerErr))
	})

	t.Run("error - not found", func(t *testing.T) {
		client := stubClient(t, http.StatusNotFound, `not found`)

		_, err := client.FetchSignature(ctx, "D1")

		var transportErr *TransportError
		require.True(t, errors.As(err, &transportErr))
		assert.Equal(t, http.StatusNotFound, transportErr.StatusCode)
		assert.False(t, IsPending(err))
	})
}

func TestHTTPClient_RevocationEvidence(t *testing.T) {
	ctx := context.Background()

	t.Run("error - no response yet", func(t *testing.T) {
		client, _ := newTestClient(t)

		evidence, err := client.RevocationEvidence()

		assert.Nil(t, evidence)
		assert.Equal(t, ErrNoResponse, err)
	})

	t.Run("ok - from download", func(t *testing.T) {
		cert, key := test.Certificate(t, "CA")
		crl := test.CRL(t, cert, key)
		resp := test.OCSPResponse(t, cert, cert, key)
		client, provider := newTestClient(t)
		pd, _ := client.Prepare(ctx, []byte("abc"), "a.pdf", "", nil, "Signature1")
		provider.Sign(pd.DocID(), []byte("container"), &test.DSSData{
			CRLs:         [][]byte{crl},
			OCSPs:        [][]byte{resp},
			Certificates: [][]byte{cert.Raw},
		})
		_, err := client.FetchSignature(ctx, pd.DocID())
		require.NoError(t, err)

		evidence, err := client.RevocationEvidence()

		require.NoError(t, err)
		assert.Equal(t, [][]byte{crl}, evidence.CRLs)
		assert.Equal(t, [][]byte{resp}, evidence.OCSPs)
		assert.Equal(t, [][]byte{cert.Raw}, evidence.Certificates)
		certs, err := evidence.ParseCertificates()
		require.NoError(t, err)
		assert.Equal(t, "CA", certs[0].Subject.CommonName)
	})

	t.Run("ok - partial", func(t *testing.T) {
		client := stubClient(t, http.StatusOK, `{"status":"OK","signed_file_contents":"AAEC","pades_dss_data":{"ocsps":["AQI="]}}`)
		_, err := client.FetchSignature(ctx, "D1")
		require.NoError(t, err)

		evidence, err := client.RevocationEvidence()

		require.NoError(t, err)
		assert.Equal(t, [][]byte{{1, 2}}, evidence.OCSPs)
		assert.NotNil(t, evidence.CRLs)
		assert.Empty(t, evidence.CRLs)
		assert.NotNil(t, evidence.Certificates)
		assert.Empty(t, evidence.Certificates)
	})

	t.Run("ok - idempotent", func(t *testing.T) {
		client := stubClient(t, http.StatusOK, `{"status":"OK","signed_file_contents":"AAEC","pades_dss_data":{"crls":["AQI="]}}`)
		_, _ = client.FetchSignature(ctx, "D1")

		first, _ := client.RevocationEvidence()
		second, _ := client.RevocationEvidence()

		assert.Equal(t, first, second)
	})

	t.Run("error - invalid entry", func(t *testing.T) {
		client := stubClient(t, http.StatusOK, `{"status":"OK","signed_file_contents":"AAEC","pades_dss_data":{"certificates":["%%%"]}}`)
		_, _ = client.FetchSignature(ctx, "D1")

		_, err := client.RevocationEvidence()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "pades_dss_data.certificates[0]")
	})

	t.Run("last response wins", func(t *testing.T) {
		client, provider := newTestClient(t)
		pd, _ := client.Prepare(ctx, []byte("abc"), "a.pdf", "", nil, "Signature1")
		provider.Sign(pd.DocID(), []byte("container"), &test.DSSData{OCSPs: [][]byte{{9}}})
		_, _ = client.FetchSignature(ctx, pd.DocID())

		_, err := client.Prepare(ctx, []byte("def"), "b.pdf", "", nil, "Signature1")
		require.NoError(t, err)

		evidence, err := client.RevocationEvidence()
		require.NoError(t, err)
		assert.True(t, evidence.Empty())
	})
}

func TestHTTPClient_SigningPageURL(t *testing.T) {
	client := NewClient(Config{ClientID: "my client", Sandbox: true})

	u, err := url.Parse(client.SigningPageURL("D1", "et"))

	require.NoError(t, err)
	assert.Equal(t, "test.eideasy.com", u.Host)
	assert.Equal(t, "/sign_contract_external", u.Path)
	assert.Equal(t, "my client", u.Query().Get("client_id"))
	assert.Equal(t, "D1", u.Query().Get("doc_id"))
	assert.Equal(t, "et", u.Query().Get("lang"))
	assert.True(t, client.Sandbox())
	assert.Equal(t, "my client", client.ClientID())
}

func TestProcessData(t *testing.T) {
	pd := NewProcessData("D1", pendingDocument("tmp"), "Signature1")

	assert.Equal(t, "D1", pd.DocID())
	assert.Equal(t, pades.PendingDocument(pendingDocument("tmp")), pd.PendingDocument())
	assert.Equal(t, "Signature1", pd.FieldName())
}

func TestProviderError_Error(t *testing.T) {
	err := &ProviderError{Status: "error", Payload: map[string]interface{}{"status": "error"}}
	assert.Equal(t, `eID Easy reported an error: {"status":"error"}`, err.Error())

	err = &ProviderError{Raw: "<html>"}
	assert.Equal(t, "unreadable response from eID Easy: <html>", err.Error())
	assert.Equal(t, "", err.Message())
}
