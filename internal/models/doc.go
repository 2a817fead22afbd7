// Package models defines the domain entities shared by the state
// containers, the persistence stores, and the metadata client:
//
//   - [User] : the logged-in account, id derived from the email
//   - [SessionData] : ephemeral session metadata, cleared on logout
//   - [Playlist] : a named, user-owned ordered collection of tracks
//   - [Music] : a single track sourced from the metadata service
//   - [Album] : a search/display entity, never persisted standalone
package models
