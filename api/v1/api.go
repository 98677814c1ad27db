package v1

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nuts-foundation/nuts-pades/logging"
	"github.com/nuts-foundation/nuts-pades/pkg/eideasy"
	"github.com/nuts-foundation/nuts-pades/pkg/metrics"
	"github.com/nuts-foundation/nuts-pades/pkg/pades"
	"github.com/nuts-foundation/nuts-pades/pkg/session"
	"github.com/sirupsen/logrus"
)

var _ ServerInterface = (*Wrapper)(nil)

const sessionPath = "/pades/v1/session/"

// Wrapper bridges the generated api types and http logic to eID Easy and the session store.
// The caller keeps the document: only digests and signature containers pass through here.
type Wrapper struct {
	// NewClient returns the eID Easy client for a single request. A client remembers its last
	// response, so clients are not shared between requests.
	NewClient func() eideasy.Client
	Store     session.Store
	State     *session.StateSigner
	Metrics   metrics.Recorder
	// PublicURL is the URL on which end users reach this server.
	PublicURL string
	// Language is used when a session does not specify one.
	Language string
	// VerifyContainer rejects signature containers that don't sign the submitted digest.
	VerifyContainer bool
	// Now returns the current time, time.Now when nil.
	Now func() time.Time
}

// CreateSession submits the digest to eID Easy and starts a signing session.
func (w Wrapper) CreateSession(ctx echo.Context) error {
	request := new(CreateSessionRequest)
	if err := ctx.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Could not parse request body: %s", err))
	}
	digest, err := base64.StdEncoding.DecodeString(request.Digest)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("digest is not base64 encoded: %s", err))
	}
	switch len(digest) {
	case sha256.Size, sha512.Size384, sha512.Size:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("digest has an unsupported length (%d bytes)", len(digest)))
	}
	if strings.TrimSpace(request.Filename) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "filename is required")
	}
	if strings.TrimSpace(request.FieldName) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "field_name is required")
	}
	language := w.Language
	if request.Language != nil && *request.Language != "" {
		language = *request.Language
	}

	id := session.NewID()
	redirect, err := w.callbackURL(id)
	if err != nil {
		return err
	}

	client := w.NewClient()
	pd, err := client.Prepare(ctx.Request().Context(), digest, request.Filename, redirect, nil, request.FieldName)
	w.Metrics.RecordPrepare(err == nil)
	if err != nil {
		logging.Log().WithError(err).Warn("Unable to prepare document at eID Easy")
		return providerHTTPError(err)
	}

	s := session.Session{
		ID:        id,
		DocID:     pd.DocID(),
		FieldName: pd.FieldName(),
		Filename:  request.Filename,
		Digest:    digest,
		Language:  language,
		CreatedAt: w.now(),
		Status:    session.StatusPending,
	}
	if err := w.Store.Put(s); err != nil {
		return err
	}
	w.Metrics.RecordSessionCreated()
	logging.Log().WithFields(logrus.Fields{"session": id, "docId": s.DocID}).Info("Signing session created")

	return ctx.JSON(http.StatusCreated, CreateSessionResponse{
		SessionId:  id,
		DocId:      s.DocID,
		WidgetUrl:  w.sessionURL(id) + "/widget",
		SigningUrl: client.SigningPageURL(s.DocID, language),
	})
}

// GetSession returns the status of the session. A pending session is checked at eID Easy first.
func (w Wrapper) GetSession(ctx echo.Context, id string) error {
	s, err := w.getSession(id)
	if err != nil {
		return err
	}
	if s.Status == session.StatusPending {
		if err := w.complete(ctx.Request().Context(), s); err != nil {
			return err
		}
	}
	return ctx.JSON(http.StatusOK, toSessionStatus(*s))
}

// DeleteSession removes the session, the end user can't complete it anymore.
func (w Wrapper) DeleteSession(ctx echo.Context, id string) error {
	if err := w.Store.Delete(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetWidget serves a page embedding the eID Easy widget for the session.
func (w Wrapper) GetWidget(ctx echo.Context, id string) error {
	s, err := w.getSession(id)
	if err != nil {
		return err
	}
	redirect, err := w.callbackURL(id)
	if err != nil {
		return err
	}
	client := w.NewClient()
	page, err := renderWidget(map[string]interface{}{
		"clientId":    client.ClientID(),
		"docId":       s.DocID,
		"filename":    s.Filename,
		"language":    s.Language,
		"sandbox":     client.Sandbox(),
		"redirectUri": redirect,
		"signingUrl":  client.SigningPageURL(s.DocID, s.Language),
		"created":     formatTime(s.CreatedAt, s.Language),
	})
	if err != nil {
		return err
	}
	return ctx.HTML(http.StatusOK, page)
}

// Callback is where eID Easy sends the end user after signing. It picks up the signature.
func (w Wrapper) Callback(ctx echo.Context, id string, params CallbackParams) error {
	if err := w.State.Verify(params.State, id); err != nil {
		logging.Log().WithError(err).WithField("session", id).Warn("Callback with invalid state")
		return echo.NewHTTPError(http.StatusForbidden, "invalid state")
	}
	s, err := w.getSession(id)
	if err != nil {
		return err
	}
	if s.Status == session.StatusPending {
		if err := w.complete(ctx.Request().Context(), s); err != nil {
			return err
		}
	}

	page, err := renderResult(map[string]interface{}{
		"filename": s.Filename,
		"language": s.Language,
		"signed":   s.Status == session.StatusSigned,
		"pending":  s.Status == session.StatusPending,
		"failed":   s.Status == session.StatusFailed,
		"reason":   s.Reason,
		"signedAt": formatTime(w.now(), s.Language),
	})
	if err != nil {
		return err
	}
	return ctx.HTML(http.StatusOK, page)
}

// complete tries to download the signature once and updates the session accordingly. A document
// eID Easy does not report as signed leaves the session pending. A signature that can't be accepted
// fails the session, so it isn't downloaded again.
func (w Wrapper) complete(ctx context.Context, s *session.Session) error {
	log := logging.Log().WithFields(logrus.Fields{"session": s.ID, "docId": s.DocID})
	client := w.NewClient()

	signature, err := client.FetchSignature(ctx, s.DocID)
	if err != nil {
		var providerErr *eideasy.ProviderError
		if errors.As(err, &providerErr) {
			w.Metrics.RecordFetch(metrics.OutcomePending)
			log.WithError(err).Debug("Signature not available yet")
			return nil
		}
		w.Metrics.RecordFetch(metrics.OutcomeError)
		log.WithError(err).Warn("Unable to download signature")
		return providerHTTPError(err)
	}

	evidence, err := client.RevocationEvidence()
	if err != nil {
		return w.reject(s, log, fmt.Errorf("unreadable revocation evidence: %w", err))
	}

	var signer *x509.Certificate
	if w.VerifyContainer {
		info, err := pades.InspectSignature(signature, s.Digest)
		if err != nil {
			return w.reject(s, log, err)
		}
		s.Signer = info
		signer = info.Certificate
	}
	if err := evidence.Validate(signer); err != nil {
		return w.reject(s, log, fmt.Errorf("invalid revocation evidence: %w", err))
	}

	s.Status = session.StatusSigned
	s.Signature = signature
	s.Evidence = evidence
	if err := w.update(*s); err != nil {
		return err
	}
	w.Metrics.RecordFetch(metrics.OutcomeSigned)
	log.Info("Signature downloaded")
	return nil
}

// reject marks the session as failed.
func (w Wrapper) reject(s *session.Session, log *logrus.Entry, reason error) error {
	w.Metrics.RecordFetch(metrics.OutcomeError)
	log.WithError(reason).Error("Signature rejected")
	s.Status = session.StatusFailed
	s.Reason = reason.Error()
	s.Signer = nil
	return w.update(*s)
}

// update stores the session unless it was removed while eID Easy was being called.
func (w Wrapper) update(s session.Session) error {
	err := w.Store.Update(s)
	if errors.Is(err, session.ErrSessionNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return err
}

func (w Wrapper) getSession(id string) (*session.Session, error) {
	s, err := w.Store.Get(id)
	if errors.Is(err, session.ErrSessionNotFound) {
		return nil, echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return s, err
}

func (w Wrapper) sessionURL(id string) string {
	return strings.TrimRight(w.PublicURL, "/") + sessionPath + url.PathEscape(id)
}

func (w Wrapper) callbackURL(id string) (string, error) {
	state, err := w.State.Sign(id)
	if err != nil {
		return "", err
	}
	return w.sessionURL(id) + "/callback?state=" + url.QueryEscape(state), nil
}

func (w Wrapper) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

// providerHTTPError maps errors from eID Easy to a 502, other errors are returned as is.
func providerHTTPError(err error) error {
	var transportErr *eideasy.TransportError
	if errors.As(err, &transportErr) {
		return echo.NewHTTPError(http.StatusBadGateway, fmt.Sprintf("eID Easy responded with status %d", transportErr.StatusCode))
	}
	var providerErr *eideasy.ProviderError
	if errors.As(err, &providerErr) {
		return echo.NewHTTPError(http.StatusBadGateway, providerErr.Error())
	}
	return err
}

func toSessionStatus(s session.Session) SessionStatus {
	result := SessionStatus{
		DocId:  s.DocID,
		Status: string(s.Status),
	}
	if s.Reason != "" {
		reason := s.Reason
		result.Reason = &reason
	}
	if s.Status != session.StatusSigned {
		return result
	}

	signature := base64.StdEncoding.EncodeToString(s.Signature)
	result.Signature = &signature
	if s.Signer != nil {
		result.Signer = &Signer{
			Subject:      s.Signer.Subject,
			Issuer:       s.Signer.Issuer,
			SerialNumber: s.Signer.SerialNumber,
			SigningTime:  s.Signer.SigningTime,
		}
	}
	if s.Evidence != nil {
		result.Dss = &DSSData{
			Crls:         encodeAll(s.Evidence.CRLs),
			Ocsps:        encodeAll(s.Evidence.OCSPs),
			Certificates: encodeAll(s.Evidence.Certificates),
		}
	}
	return result
}

func encodeAll(values [][]byte) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		result = append(result, base64.StdEncoding.EncodeToString(v))
	}
	return result
}
