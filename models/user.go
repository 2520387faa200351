// Package models, uygulamanın domain modellerini (veri yapıları) tanımlar.
//
// Veritabanındaki tabloların Go karşılıkları ve API'den giden verilerin
// şekli burada durur. `json:"..."` tag'leri serialize edilecek anahtarları belirler.
package models

import "time"

// User, bir kimlik kaydını temsil eder.
// Sunucu sahipliği, kanal sahipliği ve üyelik bu kayda referans verir.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
