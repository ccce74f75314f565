// Package api provides the REST client for the upstream quote provider.
//
// Endpoints used:
//   - GET /markets           paginated per-contract quote listing
//   - GET /series            paginated series catalog
//   - GET /events/{t}/metadata  per-event image/branding lookup
//
// The client applies a request timeout and surfaces failures immediately as
// *APIError; it performs no retries and holds no cache state. Caching and
// failure tolerance belong to the layers above.
package api
