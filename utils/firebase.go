// utils/firebase.go
package utils

import (
	"context"
	"log"

	"roomdesk/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseAuthClient mirrors platform identities into Firebase so that
// dashboards built against the original Firebase project keep working.
// It stays nil when no service account key is configured.
var FirebaseAuthClient *auth.Client

// FirebaseInit initializes the Firebase App and Auth client.
func FirebaseInit() {
	if config.AppConfig.FirebaseCredentialsFile == "" {
		log.Println("firebase: no credentials file configured, identity mirroring disabled")
		return
	}

	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}

	FirebaseAuthClient = client
}
