package domain

// ClientID identifies a client. Extended client profiles (name, address,
// KYC, ...) are not this service's responsibility; there is a 1-1 mapping
// between clients and accounts, so this also serves as the account id.
type ClientID uint16

// TransactionID is the globally unique id of a deposit or withdrawal,
// assigned by the caller. Reusing an id is a protocol violation and the
// offending command is rejected.
type TransactionID uint32
