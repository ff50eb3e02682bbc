package repo

import (
	"github.com/GlebRadaev/skillswap/internal/pg"
	accountrepo "github.com/GlebRadaev/skillswap/internal/repo/account-repo"
	credentialrepo "github.com/GlebRadaev/skillswap/internal/repo/credential-repo"
	sessionrepo "github.com/GlebRadaev/skillswap/internal/repo/session-repo"
	transactionrepo "github.com/GlebRadaev/skillswap/internal/repo/transaction-repo"
)

// Repositories holds the four stores. They all share conn, so any of them
// called inside a TXManager transaction takes part in it.
type Repositories struct {
	Credentials  *credentialrepo.Repository
	Accounts     *accountrepo.Repository
	Transactions *transactionrepo.Repository
	Sessions     *sessionrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		Credentials:  credentialrepo.New(conn),
		Accounts:     accountrepo.New(conn),
		Transactions: transactionrepo.New(conn),
		Sessions:     sessionrepo.New(conn),
	}
}
