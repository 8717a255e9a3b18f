// Package config loads per-environment credentials for the integration API.
// Environments are the Postman environment exports the QA team already
// maintains, optionally overridden by process env for CI.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "faturalab.config")

// Environment holds one buyer identity. SessionID starts empty and is
// written by the session service on successful authentication; there is no
// expiry model, a 401-class failure means the caller re-authenticates.
type Environment struct {
	Host      string
	APIKey    string
	Alias     string
	Password  string
	TaxNumber string
	UserEmail string
	SessionID string
}

var (
	mu    sync.Mutex
	cache = map[string]*Environment{}
)

type postmanEnvironment struct {
	Values []struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	} `json:"values"`
}

// Load reads <dir>/<name>.postman_environment.json. Results are cached per
// name, so every caller of the same environment shares one session.
func Load(dir, name string) (*Environment, error) {
	mu.Lock()
	defer mu.Unlock()

	if env, ok := cache[name]; ok {
		return env, nil
	}

	path := filepath.Join(dir, name+".postman_environment.json")
	logger.Debugf("loading environment from %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "environment %s", name)
	}

	var pm postmanEnvironment
	if err := json.Unmarshal(data, &pm); err != nil {
		return nil, errors.Wrapf(err, "parse environment %s", name)
	}

	env := &Environment{}
	for _, v := range pm.Values {
		switch v.Key {
		case "host":
			env.Host = v.Value
		case "apiKey":
			env.APIKey = v.Value
		case "alias":
			env.Alias = v.Value
		case "password":
			env.Password = v.Value
		case "taxNumber":
			env.TaxNumber = v.Value
		case "userEmail":
			env.UserEmail = v.Value
		case "sessionId":
			env.SessionID = v.Value
		}
	}

	if env.Host == "" {
		return nil, errors.Errorf("environment %s has no host", name)
	}

	cache[name] = env
	logger.Infof("environment loaded: %s (%s)", name, env.Host)
	return env, nil
}

// FromEnv builds an environment from FATURALAB_* process variables, loading
// a .env file first when one exists.
func FromEnv() (*Environment, error) {
	_ = godotenv.Load()

	env := &Environment{
		Host:      os.Getenv("FATURALAB_HOST"),
		APIKey:    os.Getenv("FATURALAB_API_KEY"),
		Alias:     os.Getenv("FATURALAB_ALIAS"),
		Password:  os.Getenv("FATURALAB_PASSWORD"),
		TaxNumber: os.Getenv("FATURALAB_TAX_NUMBER"),
		UserEmail: os.Getenv("FATURALAB_USER_EMAIL"),
	}
	if env.Host == "" || env.APIKey == "" {
		return nil, errors.New("FATURALAB_HOST and FATURALAB_API_KEY must be set")
	}
	return env, nil
}

// BuyerEnvironments lists the buyer tenants covered by the test suite.
func BuyerEnvironments() []string {
	return []string{
		"dev.faturalab.buyer.albc",
		"dev.faturalab.buyer.migros",
		"dev.faturalab.buyer.hepsiburada",
		"dev.faturalab.buyer.carrefoursa",
		"dev.faturalab.buyer.a101",
		"dev.faturalab.buyer.bizimtoptan",
	}
}

func BankEnvironments() []string {
	return []string{
		"dev.faturalab.bank.isbank.fl",
		"dev.faturalab.bank.garanti.fl",
		"dev.faturalab.bank.akbank.fl",
	}
}
