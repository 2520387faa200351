package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Category, sunucuları gruplayan başlık (ör: "Gaming", "Internships").
// DB'deki "categories" tablosunun Go karşılığı.
// İsim yazıldığı gibi saklanır: büyük/küçük harf normalize edilmez,
// category filtresi de bu yüzden birebir eşleşme yapar.
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"` // Nullable: açıklama opsiyonel
}

// Validate, yazma öncesi kategori alanlarını kontrol eder.
func (c *Category) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	nameLen := utf8.RuneCountInString(c.Name)
	if nameLen < 1 || nameLen > 100 {
		return fmt.Errorf("category name must be between 1 and 100 characters")
	}
	return nil
}
