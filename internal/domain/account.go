package domain

// LocalAccountID identifies the implicit account used when a client presents
// no account header. It never syncs to the remote ledger.
const LocalAccountID = "local"
