package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ServerDescriptionMaxLen, sunucu açıklamasının karakter sınırı.
const ServerDescriptionMaxLen = 250

// Server, sunucu verisini temsil eder.
// DB'deki "servers" tablosunun Go karşılığıdır.
//
// Bir kategoriye aittir, tek bir sahibi vardır, sıfır veya daha fazla üyesi
// olabilir. Üye listesi modelde taşınmaz; server_members tablosunda durur ve
// sadece sorgu (filtre/sayım) için kullanılır.
//
// CategoryName JOIN ile doldurulur; response'ta kategori id yerine isim gösterilir.
type Server struct {
	ID           int64
	Name         string
	OwnerID      int64
	CategoryID   int64
	CategoryName string
	Description  *string
}

// Validate, yazma öncesi sunucu alanlarını kontrol eder.
func (s *Server) Validate() error {
	s.Name = strings.TrimSpace(s.Name)
	nameLen := utf8.RuneCountInString(s.Name)
	if nameLen < 1 || nameLen > 100 {
		return fmt.Errorf("server name must be between 1 and 100 characters")
	}
	if s.OwnerID == 0 {
		return fmt.Errorf("server owner is required")
	}
	if s.CategoryID == 0 {
		return fmt.Errorf("server category is required")
	}
	if s.Description != nil && utf8.RuneCountInString(*s.Description) > ServerDescriptionMaxLen {
		return fmt.Errorf("server description must be at most %d characters", ServerDescriptionMaxLen)
	}
	return nil
}
