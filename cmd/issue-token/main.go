// issue-token prints a bearer token that allows a client to upload matches.
package main

import (
	"flag"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rejdeboer/tagpro-telemetry/internal/configuration"
	"github.com/rejdeboer/tagpro-telemetry/internal/logger"
	"github.com/rejdeboer/tagpro-telemetry/internal/routes"
)

func main() {
	godotenv.Load(".env")
	log := logger.Get()

	clientID := flag.String("client", "", "id of the client the token is issued to")
	flag.Parse()
	if *clientID == "" {
		log.Fatal().Msg("please provide a client id with -client")
	}

	settings := configuration.ReadConfiguration("./configuration")
	token, err := routes.GetJwt(settings.Application.SigningKey, settings.Application.TokenExpirationSeconds, *clientID)
	if err != nil {
		log.Fatal().Err(err).Msg("error signing token")
	}

	fmt.Println(token)
}
