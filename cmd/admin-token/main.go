// Package main выпускает admin-токен для маршрутов, меняющих справочники.
//
//	CONFIG_PATH=./config/local.yaml go run ./cmd/admin-token -operator ops
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/magabrotheeeer/access-gateway/internal/config"
	"github.com/magabrotheeeer/access-gateway/internal/lib/jwt"
	"github.com/magabrotheeeer/access-gateway/internal/lib/sl"
)

func main() {
	operator := flag.String("operator", "", "имя оператора, попадает в sub")
	role := flag.String("role", jwt.RoleAdmin, "роль в токене")
	flag.Parse()

	cfg := config.MustLoad()
	logger := sl.New(cfg.Env, os.Stderr)

	if *operator == "" || cfg.JWTSecretKey == "" {
		logger.Error("operator flag and admin_auth.jwt_secret_key are required")
		os.Exit(2)
	}

	token, err := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL).GenerateToken(*operator, *role)
	if err != nil {
		logger.Error("failed to generate token", sl.Err(err))
		os.Exit(1)
	}
	fmt.Println(token)
}
