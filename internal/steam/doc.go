// Package steam integrates the Steam identity provider: the OpenID 2.0
// sign-in round trip and the Web API player summary that becomes the
// session principal.
package steam
