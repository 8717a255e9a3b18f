package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"github.com/faturalab/go-faturalab-client/faturalab/config"
	"github.com/faturalab/go-faturalab-client/faturalab/model"
)

type SessionService interface {
	Authenticate() (*resty.Response, error)
}

type session struct {
	client Client
	env    *config.Environment
}

func NewSessionService(client Client, env *config.Environment) SessionService {
	return &session{client: client, env: env}
}

// Authenticate posts the credential payload and, on a successful envelope,
// stores the issued session id on the shared environment so every later
// call carries it. A business-level failure (non-200, success=false, or an
// unparseable body) leaves the session id untouched and is reported through
// the returned response, not an error.
func (s *session) Authenticate() (*resty.Response, error) {

	log.Debugf("authenticate alias %s", s.env.Alias)

	req := model.AuthenticateRequest{
		Alias:     s.env.Alias,
		Password:  s.env.Password,
		TaxNumber: s.env.TaxNumber,
	}

	resp, err := s.client.PostForm("/authenticate", "authenticateParam", req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != http.StatusOK {
		log.Warnf("authentication returned status %d", resp.StatusCode())
		return resp, nil
	}

	var envelope model.ApiResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		log.Warnf("can't parse authentication response: %v", err)
		return resp, nil
	}

	if envelope.Success {
		var auth model.AuthenticateResponse
		if err := envelope.DecodeResult(&auth); err == nil && auth.SessionID != "" {
			s.env.SessionID = auth.SessionID
			log.Debug("session id stored")
		}
	} else {
		log.Warnf("authentication failed: %s", envelope.ErrorText())
	}

	return resp, nil
}
