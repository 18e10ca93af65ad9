// Package fraudclient is the Go client runtime for the Fraud Detection API.
//
// A Client mediates every network interaction with the backend: request
// dispatch through a shared transport, bearer-credential injection at send
// time, time-boxed response caching with substring invalidation for the two
// slow-changing model endpoints, forced de-authentication on any 401, and
// extraction of rate-limit telemetry from response headers.
//
//	cli, err := fraudclient.New(core.Config{BaseURL: "https://fraud.example.com/api/v1"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	token, err := cli.Auth().Login(ctx, fraudclient.LoginInput{Username: "jane", Password: secret})
//	...
//	result, err := cli.Predictions().Predict(ctx, tx)
//
// Failures propagate as go-errors values carrying the HTTP status and the
// backend's detail message; nothing is retried and no request is aborted by
// the runtime itself.
package fraudclient
