/*
Package lmssdk provides a client SDK for the LMS backend API.

# Overview

The package is organized around a single Client that issues JSON requests
against a configured base URL, attaches the stored bearer credential to every
request, and transparently recovers from an expired credential. All domain
operations (teachers, students, classes, subjects, payments, AI) go through
the same transport and inherit the recovery behavior.

	client := lmssdk.NewClient("https://lms.example.com")

	// Sign in; the returned credential is stored on the client
	_, err := client.Login(ctx, lmssdk.LoginRequest{
		Email:    "teacher@example.com",
		Password: "secret",
	})

	// Authenticated calls just work from here
	me, err := client.Me(ctx)
	classes, err := client.ListClasses(ctx)

# Credential Refresh

When any request (outside the auth endpoints themselves) receives a 401, the
client performs one refresh call against the backend's cookie-scoped refresh
endpoint and retries the original request once with the new credential.
Concurrent requests that 401 at the same time share a single refresh call
and all observe its outcome. A request that still 401s after the retry
surfaces ErrAuthExpired; a failed refresh clears the stored credential,
fires the OnAuthLost hook, and surfaces ErrRefreshFailed to every waiter.

A 401 from /api/Auth/login, /api/Auth/register or /api/Auth/refresh-token
never triggers the refresh protocol.

# Credential Storage

The credential lives in a CredentialStore. The default is in-memory; file
and encrypted-file stores are provided for consumers that need the
credential to survive restarts:

	client.Credentials = lmssdk.NewEncryptedFileCredentialStore(path, passphrase)

# Error Handling

Backend error responses are surfaced as *APIError with the HTTP status and
the backend's message. Helpers classify common cases:

	if lmssdk.IsNotFound(err) { ... }
	if lmssdk.IsAuthExpired(err) { ... } // force a fresh sign-in

Network errors and non-401 HTTP errors pass through untouched; the refresh
cycle is invisible to callers unless it ultimately fails.

# Thread Safety

A Client is safe for concurrent use. Credential stores serialize access
internally and the refresh path is single-flight.
*/
package lmssdk
