/*
Package pokesdk is a client for the PokéSort account and catalogue API, and
the home of the wire types and error values the server writes.

# Overview

A Client wraps an http.Client with a cookie jar, so the session cookie set by
SignIn is replayed on later calls the same way a browser would:

	client, err := pokesdk.NewClient("http://localhost:8080")

	_, err = client.SignUp(ctx, pokesdk.SignUpRequest{
		Username:        "ash01",
		Email:           "ash@example.com",
		Password:        "pikachu1",
		ConfirmPassword: "pikachu1",
	})

	_, err = client.SignIn(ctx, pokesdk.SignInRequest{Username: "ash01", Password: "pikachu1"})

	settings, err := client.GetSettings(ctx)

# Errors

Every non-2xx response is returned as an *APIError carrying the HTTP status
and the symbolic code:

	var apiErr *pokesdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == pokesdk.CodeDuplicate {
		fmt.Println("taken:", apiErr.Field)
	}

The same APIError values are used by the server to write responses, so the
two sides cannot drift apart.
*/
package pokesdk
