package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"time"

	"github.com/nuts-foundation/nuts-pades/engine"
	"github.com/nuts-foundation/nuts-pades/pkg/eideasy"
	"github.com/nuts-foundation/nuts-pades/pkg/pades"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ocsp"
)

func fetchCommand() *cobra.Command {
	var docID, out, dss string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the signature container of a signed document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Validate(); err != nil {
				return err
			}
			if docID == "" {
				return errors.New("--doc-id is required")
			}
			if out == "" {
				out = docID + ".p7s"
			}

			client := eideasy.NewClient(engine.ClientConfig(*config))
			signature, err := client.FetchSignature(context.Background(), docID)
			if eideasy.IsPending(err) {
				return errors.Wrap(err, "document is not signed (yet)")
			} else if err != nil {
				return err
			}
			if err := ioutil.WriteFile(out, signature, 0644); err != nil {
				return errors.Wrap(err, "unable to write signature")
			}

			evidence, err := client.RevocationEvidence()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Signature written to %s (%d bytes)\n", out, len(signature))
			fmt.Fprintf(w, "Revocation evidence: %d CRL(s), %d OCSP response(s), %d certificate(s)\n",
				len(evidence.CRLs), len(evidence.OCSPs), len(evidence.Certificates))
			if err := printEvidence(w, *evidence); err != nil {
				return errors.Wrap(err, "invalid revocation evidence")
			}

			if dss != "" {
				data, err := json.MarshalIndent(evidence, "", "  ")
				if err != nil {
					return err
				}
				if err := ioutil.WriteFile(dss, data, 0644); err != nil {
					return errors.Wrap(err, "unable to write revocation evidence")
				}
				fmt.Fprintf(w, "Revocation evidence written to %s\n", dss)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&docID, "doc-id", "", "Document id returned by prepare")
	cmd.Flags().StringVar(&out, "out", "", "File to write the signature container to, defaults to <doc-id>.p7s")
	cmd.Flags().StringVar(&dss, "dss", "", "File to write the revocation evidence to (JSON)")
	return cmd
}

func printEvidence(w io.Writer, evidence pades.Evidence) error {
	if err := evidence.Validate(nil); err != nil {
		return err
	}
	certificates, _ := evidence.ParseCertificates()
	for _, cert := range certificates {
		fmt.Fprintf(w, "  certificate: %s (serial %s)\n", cert.Subject, cert.SerialNumber)
	}
	crls, _ := evidence.ParseCRLs()
	for _, crl := range crls {
		fmt.Fprintf(w, "  CRL: %s, %d revoked, next update %s\n", crl.Issuer, len(crl.RevokedCertificateEntries), crl.NextUpdate.Format(time.RFC3339))
	}
	responses, _ := evidence.ParseOCSPResponses()
	for _, resp := range responses {
		fmt.Fprintf(w, "  OCSP: serial %s %s, this update %s\n", resp.SerialNumber, ocspStatus(resp.Status), resp.ThisUpdate.Format(time.RFC3339))
	}
	return nil
}

func ocspStatus(status int) string {
	switch status {
	case ocsp.Good:
		return "good"
	case ocsp.Revoked:
		return "revoked"
	default:
		return "unknown"
	}
}
