// Package quest holds the data structures of the migration quest: characters,
// content records, routes and the per-player session.
package quest
