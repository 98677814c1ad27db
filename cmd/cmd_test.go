package cmd

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/nuts-foundation/nuts-pades/pkg/pades"
	"github.com/nuts-foundation/nuts-pades/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := createRootCommand()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(ioutil.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func providerArgs(provider *test.Provider, command string, args ...string) []string {
	return append([]string{command,
		"--clientId", test.ClientID,
		"--clientSecret", test.ClientSecret,
		"--apiUrl", provider.URL,
	}, args...)
}

func TestPrepareCommand(t *testing.T) {
	digest := sha256.Sum256([]byte("signed attributes"))
	digestB64 := base64.StdEncoding.EncodeToString(digest[:])

	t.Run("ok - digest", func(t *testing.T) {
		test.WorkDir(t)
		provider := test.NewProvider(t)

		out, err := execute(t, providerArgs(provider, "prepare", "--digest", digestB64, "--filename", "contract.pdf", "--redirect", "https://example.com/done")...)

		require.NoError(t, err)
		assert.Contains(t, out, "Document id:  doc-1")
		assert.Contains(t, out, provider.URL+"/sign_contract_external?client_id=test-client&doc_id=doc-1&lang=en")
		assert.Equal(t, digest[:], provider.Digest("doc-1"))
		assert.Equal(t, "https://example.com/done", provider.Redirect("doc-1"))
	})

	t.Run("ok - file", func(t *testing.T) {
		dir := test.WorkDir(t)
		provider := test.NewProvider(t)
		require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "contract.bin"), []byte("signed attributes"), 0644))

		_, err := execute(t, providerArgs(provider, "prepare", "--file", "contract.bin")...)

		require.NoError(t, err)
		assert.Equal(t, digest[:], provider.Digest("doc-1"))
		requests := provider.Requests()
		require.Len(t, requests, 1)
		files := requests[0].Body["files"].([]interface{})
		assert.Equal(t, "contract.bin", files[0].(map[string]interface{})["fileName"])
	})

	t.Run("ok - language and QR code", func(t *testing.T) {
		test.WorkDir(t)
		provider := test.NewProvider(t)

		out, err := execute(t, providerArgs(provider, "prepare", "--digest", digestB64, "--filename", "contract.pdf", "--language", "nl", "--qr")...)

		require.NoError(t, err)
		assert.Contains(t, out, "lang=nl")
		assert.Contains(t, out, "█")
	})

	t.Run("error - no digest", func(t *testing.T) {
		test.WorkDir(t)
		provider := test.NewProvider(t)

		_, err := execute(t, providerArgs(provider, "prepare", "--filename", "contract.pdf")...)

		assert.EqualError(t, err, "either --digest or --file is required")
		assert.Empty(t, provider.Requests())
	})

	t.Run("error - digest and file", func(t *testing.T) {
		test.WorkDir(t)
		provider := test.NewProvider(t)

		_, err := execute(t, providerArgs(provider, "prepare", "--digest", digestB64, "--file", "contract.bin")...)

		assert.EqualError(t, err, "use either --digest or --file")
	})

	t.Run("error - digest without filename", func(t *testing.T) {
		test.WorkDir(t)
		provider := test.NewProvider(t)

		_, err := execute(t, providerArgs(provider, "prepare", "--digest", digestB64)...)

		assert.EqualError(t, err, "--filename is required when using --digest")
	})

	t.Run("error - invalid digest", func(t *testing.T) {
		test.WorkDir(t)
		provider := test.NewProvider(t)

		_, err := execute(t, providerArgs(provider, "prepare", "--digest", "%%%", "--filename", "contract.pdf")...)

		assert.Contains(t, err.Error(), "--digest is not base64 encoded")
	})

	t.Run("error - missing credentials", func(t *testing.T) {
		test.WorkDir(t)

		_, err := execute(t, "prepare", "--digest", digestB64, "--filename", "contract.pdf")

		assert.Contains(t, err.Error(), "clientId and clientSecret are required")
	})

	t.Run("error - wrong credentials", func(t *testing.T) {
		test.WorkDir(t)
		provider := test.NewProvider(t)

		_, err := execute(t, "prepare",
			"--clientId", test.ClientID,
			"--clientSecret", "wrong",
			"--apiUrl", provider.URL,
			"--digest", digestB64,
			"--filename", "contract.pdf")

		assert.Contains(t, err.Error(), "unexpected response status code (401)")
	})
}

func TestFetchCommand(t *testing.T) {
	prepare := func(t *testing.T, provider *test.Provider) {
		_, err := execute(t, providerArgs(provider, "prepare", "--digest", "YWJj", "--filename", "contract.pdf")...)
		require.NoError(t, err)
	}

	t.Run("ok", func(t *testing.T) {
		dir := test.WorkDir(t)
		provider := test.NewProvider(t)
		prepare(t, provider)
		cert, key := test.Certificate(t, "Signer")
		crl := test.CRL(t, cert, key)
		ocsp := test.OCSPResponse(t, cert, cert, key)
		provider.Sign("doc-1", []byte("container"), &test.DSSData{
			CRLs:         [][]byte{crl},
			OCSPs:        [][]byte{ocsp},
			Certificates: [][]byte{cert.Raw},
		})

		out, err := execute(t, providerArgs(provider, "fetch", "--doc-id", "doc-1", "--dss", "dss.json")...)

		require.NoError(t, err)
		assert.Contains(t, out, "Signature written to doc-1.p7s (9 bytes)")
		assert.Contains(t, out, "Revocation evidence: 1 CRL(s), 1 OCSP response(s), 1 certificate(s)")
		assert.Contains(t, out, "certificate: CN=Signer,C=EE")
		assert.Contains(t, out, "CRL: CN=Signer,C=EE, 0 revoked")
		assert.Contains(t, out, fmt.Sprintf("OCSP: serial %s good", cert.SerialNumber))
		signature, err := ioutil.ReadFile(filepath.Join(dir, "doc-1.p7s"))
		require.NoError(t, err)
		assert.Equal(t, []byte("container"), signature)

		data, err := ioutil.ReadFile(filepath.Join(dir, "dss.json"))
		require.NoError(t, err)
		evidence := pades.Evidence{}
		require.NoError(t, json.Unmarshal(data, &evidence))
		assert.Equal(t, [][]byte{crl}, evidence.CRLs)
		assert.Equal(t, [][]byte{ocsp}, evidence.OCSPs)
		assert.Equal(t, [][]byte{cert.Raw}, evidence.Certificates)
	})

	t.Run("ok - custom output without evidence", func(t *testing.T) {
		dir := test.WorkDir(t)
		provider := test.NewProvider(t)
		prepare(t, provider)
		provider.Sign("doc-1", []byte("container"), nil)

		out, err := execute(t, providerArgs(provider, "fetch", "--doc-id", "doc-1", "--out", "signature.p7s")...)

		require.NoError(t, err)
		assert.Contains(t, out, "Revocation evidence: 0 CRL(s), 0 OCSP response(s), 0 certificate(s)")
		assert.FileExists(t, filepath.Join(dir, "signature.p7s"))
	})

	t.Run("error - malformed evidence", func(t *testing.T) {
		dir := test.WorkDir(t)
		provider := test.NewProvider(t)
		prepare(t, provider)
		provider.Sign("doc-1", []byte("container"), &test.DSSData{OCSPs: [][]byte{{1, 2}}})

		_, err := execute(t, providerArgs(provider, "fetch", "--doc-id", "doc-1")...)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid revocation evidence")
		assert.FileExists(t, filepath.Join(dir, "doc-1.p7s"))
	})

	t.Run("error - not signed yet", func(t *testing.T) {
		dir := test.WorkDir(t)
		provider := test.NewProvider(t)
		prepare(t, provider)

		_, err := execute(t, providerArgs(provider, "fetch", "--doc-id", "doc-1")...)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "document is not signed (yet)")
		assert.NoFileExists(t, filepath.Join(dir, "doc-1.p7s"))
	})

	t.Run("error - unknown document", func(t *testing.T) {
		test.WorkDir(t)
		provider := test.NewProvider(t)

		_, err := execute(t, providerArgs(provider, "fetch", "--doc-id", "doc-42")...)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Document not found")
	})

	t.Run("error - no doc id", func(t *testing.T) {
		test.WorkDir(t)
		provider := test.NewProvider(t)

		_, err := execute(t, providerArgs(provider, "fetch")...)

		assert.EqualError(t, err, "--doc-id is required")
	})
}

func TestConfigCommand(t *testing.T) {
	t.Run("secrets are masked", func(t *testing.T) {
		test.WorkDir(t)

		out, err := execute(t, "config", "--clientId", "my-client", "--clientSecret", "my-secret", "--stateKey", "my-key")

		require.NoError(t, err)
		assert.Contains(t, out, "my-client")
		assert.NotContains(t, out, "my-secret")
		assert.NotContains(t, out, "my-key")
		assert.Contains(t, out, "********")
	})

	t.Run("config file", func(t *testing.T) {
		src, err := filepath.Abs(filepath.Join("..", "testdata", "pades.yaml"))
		require.NoError(t, err)
		dir := test.WorkDir(t)
		require.NoError(t, test.CopyFile(src, filepath.Join(dir, "pades.yaml")))

		out, err := execute(t, "config", "--configfile", "pades.yaml")

		require.NoError(t, err)
		assert.Contains(t, out, "sign.example.com")
	})

	t.Run(".env file", func(t *testing.T) {
		dir := test.WorkDir(t)
		test.UnsetEnv(t, "NUTS_PADES_CLIENTID", "NUTS_PADES_LANGUAGE")
		require.NoError(t, ioutil.WriteFile(filepath.Join(dir, ".env"), []byte("NUTS_PADES_CLIENTID=from-dotenv\nNUTS_PADES_LANGUAGE=fi\n"), 0644))

		out, err := execute(t, "config", "--language", "de")

		require.NoError(t, err)
		assert.Contains(t, out, "from-dotenv")
		assert.Contains(t, out, fmt.Sprintf("%-16s %v\n", "language", "de"))
	})

	t.Run("error - invalid log level", func(t *testing.T) {
		test.WorkDir(t)

		_, err := execute(t, "config", "--loglevel", "chatty")

		assert.Contains(t, err.Error(), "invalid logging configuration")
	})
}
