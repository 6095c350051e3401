// Package cosasdk is the Go client for the COSA co-op management service.
//
// The SDKClient handles unauthenticated operations (registration, login).
// A successful login returns a Session, which carries the opaque bearer
// token through the second-factor step and into authenticated calls:
//
//	client := cosasdk.NewSDKClient("http://localhost:8080")
//	session, login, err := client.Login(ctx, "alice", "password")
//	if err != nil { ... }
//	if login.SecondFactorRequired {
//		_, err = session.VerifySecondFactor(ctx, code)
//	}
//	me, err := session.Me(ctx)
//
// Errors returned by the server are surfaced as *APIError values carrying
// the HTTP status and machine-readable code.
package cosasdk
