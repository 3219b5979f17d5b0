// Package config resolves snapcheck configuration.
//
// Resolution layers, weakest to strongest:
//
//  1. Built-in defaults (Defaults)
//  2. A project config file (.snapcheckrc.yaml and friends, or an explicit
//     path)
//  3. The mobile overlay (--mobile, when the file enables snapshot.mobile)
//  4. The locale overlay (--locale CODE, when the file enables
//     snapshot.locale)
//  5. Structured programmatic overrides (CLI flags and API callers)
//
// The merge is schema-aware: every field has a declared rule (replace when
// set, recurse, or protect-once-set for the runtime Locale and
// ActiveViewport fields), so a bare --locale string can never clobber the
// locale object computed by the overlay.
//
// Resolve returns a fresh Config per call. Callers iterating locales must
// resolve once per locale rather than patching a previously returned Config.
package config
