// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Sabit error değişkenleri referans ile karşılaştırılır:
//
//	if errors.Is(err, pkg.ErrBadRequest) { ... }
//
// Service katmanı bunları mesajla wrap'leyerek döner:
//
//	fmt.Errorf("%w: Server with id %s not found", pkg.ErrBadRequest, id)
package pkg

import "errors"

// Domain-level error'lar.
// Handler katmanı bu error'ları HTTP status code'larına map'ler.
var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("bad request")
	ErrInternal      = errors.New("internal error")
)
