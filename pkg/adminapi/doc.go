// Package adminapi defines the wire types of the back-office admin API.
// Clients and the server share these request and response shapes; account
// payloads never carry password hashes on read paths.
package adminapi
