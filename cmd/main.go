package main

import (
	"log"

	"github.com/Ayush-shah-dev/real-estate-backend/cmd/server"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/auth"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/config"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/storage"
)

var (
	srvAddr                  = config.Env.ServerAddr
	postgresConnStr          = config.Env.PostgresConnStr
	accessTokenSecret        = config.Env.AccessTokenSecret
	refreshTokenSecret       = config.Env.RefreshTokenSecret
	accessTokenExpiryInSecs  = config.Env.AccessTokenExpiryInSecs
	refreshTokenExpiryInSecs = config.Env.RefreshTokenExpiryInSecs
)

func main() {
	log.SetFlags(log.Ldate | log.Llongfile)

	db, err := storage.NewPostgresDB(postgresConnStr)
	if err != nil {
		log.Fatal(err)
	}

	srv := server.NewServer(&server.ServerConfig{
		Addr: srvAddr,
		DB:   db,
		TokenManager: auth.NewTokenService(
			accessTokenSecret,
			refreshTokenSecret,
			accessTokenExpiryInSecs,
			refreshTokenExpiryInSecs,
		),
	},
	)
	srv.Run()
}
