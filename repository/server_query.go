package repository

import (
	"fmt"
	"strings"
)

// ServerQuery, sunucu listesi için adım adım kurulan, tembel (lazy) bir sorgudur.
//
// Her method yeni bir ServerQuery döner: alıcıyı değiştirmez, bu yüzden
// ara bir sorgu güvenle paylaşılabilir:
//
//	q := repository.NewServerQuery().FilterByCategoryName("Gaming")
//	top := q.Limit(10)        // q değişmedi
//	one := top.FilterByID(42) // sadece ilk 10 içinde arar
//
// Filtreler çağrılma sırasıyla, o ana kadar daraltılmış küme üzerinde çalışır.
// Limit'ten SONRA eklenen bir filtre kesilmiş kümeye uygulanır: sorgu
// SQL'de bir alt-select ile sarılır. Çalışma kümesi her zaman id'ye göre
// artan sıradadır.
//
// Sorgu ServerRepository.Find ile çalıştırılır.
type ServerQuery struct {
	stages          []queryStage
	withMemberCount bool
}

type filterKind int

const (
	filterCategoryName filterKind = iota
	filterMember
	filterID
)

type serverFilter struct {
	kind  filterKind
	value any
}

// queryStage, aynı seviyedeki filtreler ve (varsa) onları izleyen limit.
type queryStage struct {
	filters []serverFilter
	limit   int // noLimit ise LIMIT yok
}

const noLimit = -1

func (s queryStage) limited() bool { return s.limit != noLimit }

// NewServerQuery, tüm sunucuları kapsayan boş sorgu.
func NewServerQuery() ServerQuery {
	return ServerQuery{}
}

// FilterByCategoryName, kategori adı birebir (büyük/küçük harf duyarlı) eşleşen sunucular.
func (q ServerQuery) FilterByCategoryName(name string) ServerQuery {
	return q.withFilter(serverFilter{kind: filterCategoryName, value: name})
}

// FilterByMember, userID'nin üyesi olduğu sunucular.
func (q ServerQuery) FilterByMember(userID int64) ServerQuery {
	return q.withFilter(serverFilter{kind: filterMember, value: userID})
}

// FilterByID, tek bir sunucuya daraltır.
func (q ServerQuery) FilterByID(id int64) ServerQuery {
	return q.withFilter(serverFilter{kind: filterID, value: id})
}

// WithMemberCount, her sunucu için gerçek üye sayısını hesaplatır.
// Sayı üyelik filtresinden bağımsızdır: sunucunun tüm üyeleri sayılır.
func (q ServerQuery) WithMemberCount() ServerQuery {
	next := q.clone()
	next.withMemberCount = true
	return next
}

// Limit, mevcut çalışma kümesinin ilk n elemanını tutar. Sıra korunur.
// Art arda iki limit daha küçük olanı uygular.
func (q ServerQuery) Limit(n int) ServerQuery {
	if n < 0 {
		n = 0
	}

	next := q.clone()
	last := next.lastStage()
	if next.stages[last].limited() && next.stages[last].limit <= n {
		return next
	}
	next.stages[last].limit = n
	return next
}

// CountsMembers, sorgunun üye sayısı hesaplatıp hesaplatmadığını döner.
func (q ServerQuery) CountsMembers() bool {
	return q.withMemberCount
}

func (q ServerQuery) withFilter(f serverFilter) ServerQuery {
	next := q.clone()
	last := next.lastStage()
	if next.stages[last].limited() {
		next.stages = append(next.stages, queryStage{limit: noLimit})
		last++
	}
	next.stages[last].filters = append(next.stages[last].filters, f)
	return next
}

// lastStage, son stage'in index'ini döner; hiç stage yoksa boş bir tane ekler.
func (q *ServerQuery) lastStage() int {
	if len(q.stages) == 0 {
		q.stages = append(q.stages, queryStage{limit: noLimit})
	}
	return len(q.stages) - 1
}

func (q ServerQuery) clone() ServerQuery {
	next := ServerQuery{withMemberCount: q.withMemberCount}
	if len(q.stages) > 0 {
		next.stages = make([]queryStage, len(q.stages))
		for i, st := range q.stages {
			next.stages[i] = queryStage{
				filters: append([]serverFilter(nil), st.filters...),
				limit:   st.limit,
			}
		}
	}
	return next
}

// columnSet, bir stage'de filtrelerin referans verdiği kolon ifadeleri.
// İlk stage tablolara, sonrakiler bir önceki alt-select'in alias'lı kolonlarına bakar.
type columnSet struct {
	id           string
	categoryName string
}

// build, sorguyu tek bir SQL statement'ına ve argümanlarına çevirir.
//
// Kolonlar: id, name, owner_id, category_id, category_name, description, num_members.
// num_members sayım istenmediyse NULL'dur.
func (q ServerQuery) build() (string, []any) {
	memberCount := "NULL"
	if q.withMemberCount {
		memberCount = "(SELECT COUNT(*) FROM server_members m WHERE m.server_id = s.id)"
	}

	stages := q.stages
	if len(stages) == 0 {
		stages = []queryStage{{limit: noLimit}}
	}

	var sb strings.Builder
	var args []any

	sb.WriteString(`SELECT s.id AS id, s.name AS name, s.owner_id AS owner_id, s.category_id AS category_id, ` +
		`c.name AS category_name, s.description AS description, ` + memberCount + ` AS num_members ` +
		`FROM servers s JOIN categories c ON c.id = s.category_id`)
	args = writeStage(&sb, args, stages[0], columnSet{id: "s.id", categoryName: "c.name"})

	for i, st := range stages[1:] {
		alias := fmt.Sprintf("w%d", i+1)
		inner := sb.String()

		sb.Reset()
		sb.WriteString("SELECT * FROM (" + inner + ") AS " + alias)
		args = writeStage(&sb, args, st, columnSet{id: alias + ".id", categoryName: alias + ".category_name"})
	}

	return sb.String(), args
}

// writeStage, stage'in WHERE, ORDER BY ve LIMIT kısımlarını yazar.
func writeStage(sb *strings.Builder, args []any, st queryStage, cols columnSet) []any {
	conds := make([]string, 0, len(st.filters))
	for _, f := range st.filters {
		switch f.kind {
		case filterCategoryName:
			conds = append(conds, cols.categoryName+" = ?")
		case filterMember:
			conds = append(conds, "EXISTS (SELECT 1 FROM server_members sm WHERE sm.server_id = "+cols.id+" AND sm.user_id = ?)")
		case filterID:
			conds = append(conds, cols.id+" = ?")
		}
		args = append(args, f.value)
	}

	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY " + cols.id + " ASC")
	if st.limited() {
		sb.WriteString(" LIMIT ?")
		args = append(args, st.limit)
	}

	return args
}
