package cmd

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io/ioutil"
	"path/filepath"

	"github.com/mdp/qrterminal/v3"
	"github.com/nuts-foundation/nuts-pades/engine"
	"github.com/nuts-foundation/nuts-pades/pkg/eideasy"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func prepareCommand() *cobra.Command {
	var digestB64, file, filename, redirect, field string
	var showQR bool

	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Submit a digest to eID Easy for signing",
		Long: "Submit a digest to eID Easy for signing and print the document id and the page on which it can be signed. " +
			"The digest is either given as base64 or calculated (SHA-256) over a file holding the signable byte range.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Validate(); err != nil {
				return err
			}

			digest, err := readDigest(digestB64, file)
			if err != nil {
				return err
			}
			if filename == "" {
				if file == "" {
					return errors.New("--filename is required when using --digest")
				}
				filename = filepath.Base(file)
			}

			client := eideasy.NewClient(engine.ClientConfig(*config))
			pd, err := client.Prepare(context.Background(), digest, filename, redirect, nil, field)
			if err != nil {
				return err
			}

			signingURL := client.SigningPageURL(pd.DocID(), config.Language)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Document id:  %s\n", pd.DocID())
			fmt.Fprintf(out, "Signing page: %s\n", signingURL)
			if showQR {
				qrterminal.GenerateHalfBlock(signingURL, qrterminal.L, out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&digestB64, "digest", "", "Base64 encoded digest to sign")
	cmd.Flags().StringVar(&file, "file", "", "File to calculate the digest over")
	cmd.Flags().StringVar(&filename, "filename", "", "File name shown to the signer, defaults to the name of --file")
	cmd.Flags().StringVar(&redirect, "redirect", "", "URL the signer is sent to after signing")
	cmd.Flags().StringVar(&field, "field", "Signature1", "Name of the signature field")
	cmd.Flags().BoolVar(&showQR, "qr", false, "Show the signing page as QR code")
	return cmd
}

func readDigest(digestB64 string, file string) ([]byte, error) {
	switch {
	case digestB64 != "" && file != "":
		return nil, errors.New("use either --digest or --file")
	case digestB64 != "":
		digest, err := base64.StdEncoding.DecodeString(digestB64)
		if err != nil {
			return nil, errors.Wrap(err, "--digest is not base64 encoded")
		}
		return digest, nil
	case file != "":
		data, err := ioutil.ReadFile(file)
		if err != nil {
			return nil, errors.Wrap(err, "unable to read file")
		}
		digest := sha256.Sum256(data)
		return digest[:], nil
	default:
		return nil, errors.New("either --digest or --file is required")
	}
}
