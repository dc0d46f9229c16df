// Package main is the entry point of cinefolio, the portfolio site of a
// cinematographer. It serves the public showcase and contact form and an
// admin area to read messages and manage works, categories, social links
// and contact details. Content lives as JSON documents in a key-value store
// backed by memory, a JSON file, redis or a SQL database.
package main
