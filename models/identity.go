package models

// Identity, isteği yapan tarafın kimlik durumudur.
//
// Middleware geçerli token bulursa kullanıcıyla, bulamazsa anonim olarak
// oluşturulur. Sıfır değer (Identity{}) anonimdir.
type Identity struct {
	user *User
}

// AuthenticatedIdentity, doğrulanmış kullanıcı için Identity döner.
func AuthenticatedIdentity(user *User) Identity {
	return Identity{user: user}
}

// AnonymousIdentity, kimliği doğrulanmamış çağıran.
func AnonymousIdentity() Identity {
	return Identity{}
}

// IsAuthenticated, çağıranın doğrulanmış bir kullanıcı olup olmadığını döner.
func (i Identity) IsAuthenticated() bool {
	return i.user != nil
}

// CurrentIdentityID, doğrulanmış kullanıcının id'si. Anonim çağıranda 0.
func (i Identity) CurrentIdentityID() int64 {
	if i.user == nil {
		return 0
	}
	return i.user.ID
}

// User, doğrulanmış kullanıcıyı döner; anonimse nil.
func (i Identity) User() *User {
	return i.user
}
