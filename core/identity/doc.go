// Package identity resolves the actor on whose behalf an import runs.
//
// The provider is deliberately best-effort: an import must never fail just
// because nobody is signed in, so absence is modeled as an explicit boolean
// branch rather than an error. Records created without a known actor simply
// carry no owner attribution.
//
// # Providers
//
//   - Static: a fixed actor id, used by the CLI (--actor flag or config)
//   - FromContext: reads the actor injected into the request context by the
//     HTTP layer (X-Actor-ID header)
package identity
