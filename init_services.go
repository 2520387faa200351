// Package main: Service katmanı başlatma.
//
// initServices, service'leri repository'ler ve config ile oluşturur.
package main

import (
	"github.com/akinalp/serverdir/config"
	"github.com/akinalp/serverdir/services"
)

// Services, service instance'larını tutan container struct.
type Services struct {
	Auth     services.AuthService
	Server   services.ServerService
	Category services.CategoryService
}

func initServices(repos *Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:     services.NewAuthService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry),
		Server:   services.NewServerService(repos.Server, repos.Channel),
		Category: services.NewCategoryService(repos.Category),
	}
}
