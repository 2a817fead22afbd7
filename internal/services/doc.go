// Package services defines the MetadataService interface for the
// external music-metadata HTTP API and its TheAudioDB implementation.
//
// The API is read-only: three endpoints covering album search by
// artist, track listing by album, and top tracks by artist. Response
// records arrive loosely typed (every field is a string, many are
// absent or null); mapping into the domain shapes happens here.
package services
