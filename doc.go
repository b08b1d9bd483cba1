// Package accounts implements an HTTP-facing account pipeline: credential
// verification, bearer token issuance, and token-gated authorization.
//
// Request processing:
//   - Controllers consume a normalized Request envelope and always produce a
//     Response envelope. Unexpected failures never escape a controller; they
//     are converted to a 500 envelope whose original cause stays available to
//     decorators for audit logging.
//   - ValidationComposite evaluates field validators in order and reports the
//     first failure, so clients always see a single actionable error.
//
// Capabilities:
//   - Hasher, TokenSigner, AccountStore, and AuditLog are narrow interfaces
//     satisfied by one adapter per backing technology (bcrypt, JWT, Bun).
//     Every pipeline component receives its collaborators by construction,
//     which keeps the flow testable end to end with plain mocks.
//
// Authorization:
//   - AuthMiddleware shares the controller contract. It resolves the bearer
//     token found under the x-access-token header against the account store,
//     optionally enforcing a required role. Admin accounts satisfy any role
//     requirement.
package accounts
