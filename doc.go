// Package ay32 provides a Go client SDK for the AY32 operations backend,
// which manages pools of platform accounts, captured email records,
// email-account credentials, API keys and invite tasks.
//
// Every operation validates its parameters locally, posts a flat JSON
// body, and normalizes the backend's {errCode, errMsg, data} envelope
// into a typed result and a plain Go error. Transport failures where the
// server never answered are retried with a constant delay; any received
// response is terminal.
//
// Basic usage:
//
//	client, err := ay32.New("http://localhost:8080",
//	    ay32.WithAPIKey("your-api-key"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Query captured verification emails
//	page, err := client.QueryEmails(ctx, ay32.QueryEmailsParams{
//	    EmailSource: ay32.EmailSourceHuel,
//	    EmailType:   ay32.EmailTypeReceive,
//	    Subject:     "验证码",
//	    Page:        1,
//	    PageSize:    10,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, rec := range page.List {
//	    fmt.Println(rec.Subject, rec.To)
//	}
package ay32
