package domain

// Account is the balance state of a single client.
//
// Available funds may be withdrawn or put in dispute; held funds are frozen
// pending dispute resolution. Once Locked becomes true after a chargeback it
// is permanent: no further command for this client changes the account.
type Account struct {
	Client    ClientID
	Available Amount
	Held      Amount
	Locked    bool
}

// NewAccount returns a fresh account with zeroed balances.
func NewAccount(client ClientID) Account {
	return Account{Client: client}
}

// Total is the derived sum of available and held funds. It is computed at
// read time, never stored.
func (a Account) Total() (Amount, error) {
	return a.Available.Add(a.Held)
}
