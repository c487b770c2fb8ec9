// Package ucertify provides a Go client SDK for the Universal Certifier API,
// a service that issues certifications attesting to the existence and
// content of links or files at a point in time.
//
// Requests are authenticated either with an access token or with a client id
// and secret. Secret-based clients sign every request body with HMAC-SHA1 and
// send the result in the u-cert-signature header.
//
// Basic usage:
//
//	client, err := ucertify.NewWithSecret("client-id", "client-secret",
//	    ucertify.WithBaseURL("https://api.ucertify.example"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Certify(ctx, []ucertify.Link{
//	    {Name: "picture_0", Link: "https://ipfs.io/ipfs/Qmep61aZqJhhmSkhQHUSUme5RFbi8ZfccxXC1TyjKHcEig"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cert, err := ucertify.ParseCertification(resp)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err = client.GetCertification(ctx, cert.Identifier())
//
// Every operation returns an *Error on failure; use errors.Is with the
// exported sentinels (ErrParameter, ErrNotFound, ...) to classify it.
//
// Sandbox mode is a client-wide flag ([Client.SetSandboxMode]) that a single
// call can override with [WithRequestSandbox]:
//
//	resp, err := client.Certify(ctx, links, ucertify.WithRequestSandbox(true))
//
// For callback-style consumers, the *Async methods and [Go] run a call in the
// background and return a [Future]; the optional [Callback] fires with the
// same outcome the future settles with.
package ucertify
