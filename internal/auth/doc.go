// Package auth implements the admin login gate.
//
// A Gate keeps an authenticated flag and its expiry in a kv.Store under
// admin_authenticated and admin_auth_expiry. The web layer gives every
// visiting browser its own namespace of the store, so each browser has its
// own login state. Gates sharing a namespace observe each other's login and
// logout through Watch.
//
// The gate compares against one configured credential pair. It is meant to
// keep casual visitors out of the admin pages, nothing more.
package auth
