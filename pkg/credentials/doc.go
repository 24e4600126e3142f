// Package credentials projects a validated session into the immutable,
// request-scoped value the rest of the console's request handling consumes.
//
// A Credentials value is created per request with New, after the session
// store has validated the presented token and cookie. It carries copies of
// the session's identity fields plus request context (effective language,
// client address) and a handful of fields the pipeline fills in later, such
// as the caller URL and the last-used filter IDs. Nothing in this package
// holds shared state, so no synchronization is needed.
package credentials
