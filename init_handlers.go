// Package main: Handler katmanı başlatma.
//
// Handler'lar ince: HTTP parse, service çağrısı, response yazımı.
package main

import (
	"github.com/akinalp/serverdir/handlers"
)

// Handlers, handler instance'larını tutan container struct.
type Handlers struct {
	Server   *handlers.ServerHandler
	Category *handlers.CategoryHandler
	User     *handlers.UserHandler
}

func initHandlers(svcs *Services) *Handlers {
	return &Handlers{
		Server:   handlers.NewServerHandler(svcs.Server),
		Category: handlers.NewCategoryHandler(svcs.Category),
		User:     handlers.NewUserHandler(),
	}
}
