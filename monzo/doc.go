// Package monzo is a typed client for the Monzo banking API.
//
// A Client holds the access token and the transport. Each API operation is
// started from the client, returns an immutable request value and is
// executed with Send:
//
//	client, err := monzo.New(accessToken)
//
//	bal, err := client.Balance(accountID).Send(ctx)
//
//	err = client.BasicFeedItem(accountID, "Saved £5", iconURL).
//	    Body("Round-ups moved to your pot").
//	    BackgroundColor("#FCF1EE").
//	    Send(ctx)
//
//	tx, err := client.AnnotateTransaction(txID, map[string]string{"notes": "lunch"}).Send(ctx)
//
// A request value is sent at most once; copies made with its setters share
// that budget and a repeated Send returns ErrAlreadySent. Errors from Send
// are the rest package's *TransportError, *APIError and *DecodeError.
package monzo
