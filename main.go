package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/faturalab/go-faturalab-client/faturalab"
	"github.com/faturalab/go-faturalab-client/faturalab/config"
	"github.com/faturalab/go-faturalab-client/faturalab/fixture"
	"github.com/faturalab/go-faturalab-client/faturalab/model"
	"github.com/faturalab/go-faturalab-client/faturalab/poll"
	"github.com/faturalab/go-faturalab-client/faturalab/util"
)

// loadEnvironment prefers a named Postman environment export when
// FATURALAB_ENV_NAME is set, otherwise falls back to FATURALAB_* variables.
func loadEnvironment() (*config.Environment, error) {
	if name := os.Getenv("FATURALAB_ENV_NAME"); name != "" {
		return config.Load(util.GetEnvOrFailed("FATURALAB_ENV_DIR"), name)
	}
	return config.FromEnv()
}

func main() {

	logrus.SetLevel(logrus.DebugLevel)

	env, err := loadEnvironment()
	if err != nil {
		logrus.Fatal(err)
	}

	client := faturalab.NewClient(env)

	resp, err := client.Authenticate()
	if err != nil {
		logrus.Fatalf("authentication transport failure: %v", err)
	}
	if !client.IsResponseSuccessful() {
		logrus.Fatalf("authentication rejected: %s", resp.String())
	}
	fmt.Println("session:", client.SessionID())

	gen := fixture.New()
	invoice := gen.ValidInvoice(env.UserEmail, model.EFatura)

	if _, err = client.UploadInvoice(invoice); err != nil {
		logrus.Fatalf("upload failed: %v", err)
	}
	fmt.Println("uploaded:", invoice.InvoiceNo, "success:", client.IsResponseSuccessful())

	history := &model.InvoiceHistoryRequest{
		FromDate:      gen.TodayStart(),
		OnlyLastState: true,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	found, err := client.AwaitInvoiceInHistory(ctx, poll.DefaultPolicy, history, invoice.InvoiceNo)
	if err != nil {
		logrus.Fatalf("history polling failed: %v", err)
	}
	fmt.Printf("invoice visible in history: %t (after %d attempts)\n", found.Found, found.Attempts)
}
