// Package store implements the application state tree: three
// cooperating containers (session, playlists, music search) composed
// by [Store] behind a single logical writer.
//
// All mutation goes through named action methods; one mutex shared by
// the containers serializes every state transition, so readers always
// observe a complete snapshot. Selectors return value copies, never
// live references into container state.
//
// Persistence is a side effect of the actions themselves: every
// playlist mutation synchronously rewrites the durable collection, and
// session actions rewrite the session file. Storage failures are
// swallowed and logged; the in-memory state stays authoritative for
// the rest of the process lifetime.
package store
