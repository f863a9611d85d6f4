// Package rest exposes the cat battle backend as a JSON HTTP API: login
// exchanges a telegram id for a signed session token, and the cat lucky
// routes project and advance the authenticated account's stage ledger.
package rest
