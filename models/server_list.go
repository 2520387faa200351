package models

// ServerListParams, sunucu listeleme endpoint'inin query parametreleri.
//
// Parse sadece sözdizimseldir: pointer alanlar nil ise parametre gönderilmemiştir.
// Qty ve ByServerID ham string olarak taşınır: sayı olmayan bir değer parse
// sırasında değil, filtre uygulanırken validation error olur.
type ServerListParams struct {
	Category       *string
	Qty            *string
	ByUser         bool
	ByServerID     *string
	WithNumMembers bool
}

// ShapingContext, serialize edilen kayda hangi opsiyonel alanların gireceğini belirler.
// Filtre zincirinden response şekillendirmeye açıkça taşınır.
type ShapingContext struct {
	WithNumMembers bool
}

// ServerRecord, listeleme response'undaki tek bir sunucu.
//
// Üye listesi hiçbir zaman dönmez. NumMembers sadece üye sayısı istendiğinde
// set edilir; nil iken "num_members" anahtarı JSON'da hiç yer almaz
// (null olarak da yazılmaz). 0 üyeli sunucuda pointer 0'ı gösterir ve alan yazılır.
type ServerRecord struct {
	ID          int64           `json:"id"`
	NumMembers  *int            `json:"num_members,omitempty"`
	Channels    []ChannelRecord `json:"channel_server"`
	Category    string          `json:"category"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Owner       int64           `json:"owner"`
}

// ChannelRecord, sunucu kaydının içinde gömülü kanal.
type ChannelRecord struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Topic  string `json:"topic"`
	Owner  int64  `json:"owner"`
	Server int64  `json:"server"`
}
