// Command ay32 is a small operational helper around the client library.
// Configuration comes from AY32_* environment variables or the YAML file
// named by AY32_CONFIG; a .env file in the working directory is honored.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	ay32 "github.com/laixingyu123/ay32-client-go"
	"github.com/laixingyu123/ay32-client-go/config"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: ay32 <command> [args]\n\ncommands:\n" +
			"  latest-email <to>       print the newest email for an address\n" +
			"  query-emails <to>       print the first page of emails for an address\n" +
			"  create-account <name> <password>\n" +
			"  upload <path>           upload a local file\n" +
			"  export-accounts <path>  seal email accounts from stdin (JSON array)\n" +
			"  import-accounts <path>  print accounts from a sealed file")
	}

	if err := config.LoadDotenv(); err != nil {
		fatal("load .env: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "latest-email":
		latestEmail(ctx, requireArg(2, "to"))
	case "query-emails":
		queryEmails(ctx, requireArg(2, "to"))
	case "create-account":
		createAccount(ctx, requireArg(2, "name"), requireArg(3, "password"))
	case "upload":
		upload(ctx, requireArg(2, "path"))
	case "export-accounts":
		exportAccounts(requireArg(2, "path"))
	case "import-accounts":
		importAccounts(requireArg(2, "path"))
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func newClient() *ay32.Client {
	client, err := ay32.NewFromEnv()
	if err != nil {
		fatal("create client: %v", err)
	}
	return client
}

func latestEmail(ctx context.Context, to string) {
	email, err := newClient().LatestEmail(ctx, ay32.LatestEmailParams{
		EmailSource: sourceFromEnv(),
		EmailType:   ay32.EmailTypeReceive,
		To:          to,
	})
	if err != nil {
		fatal("latest email: %v", err)
	}
	printJSON(email)
}

func queryEmails(ctx context.Context, to string) {
	page, err := newClient().QueryEmails(ctx, ay32.QueryEmailsParams{
		EmailSource: sourceFromEnv(),
		EmailType:   ay32.EmailTypeReceive,
		To:          to,
		Page:        1,
		PageSize:    20,
	})
	if err != nil {
		fatal("query emails: %v", err)
	}
	printJSON(page)
}

func createAccount(ctx context.Context, name, password string) {
	account, err := newClient().CreateAccount(ctx, ay32.CreateAccountParams{
		Account:  name,
		Password: password,
	})
	if err != nil {
		fatal("create account: %v", err)
	}
	printJSON(account)
}

func upload(ctx context.Context, path string) {
	res, err := newClient().UploadFileFromPath(ctx, path)
	if err != nil {
		fatal("upload: %v", err)
	}
	printJSON(res)
}

func exportAccounts(path string) {
	var accounts []ay32.EmailAccount
	if err := json.NewDecoder(os.Stdin).Decode(&accounts); err != nil {
		fatal("decode accounts from stdin: %v", err)
	}

	if err := ay32.ExportEmailAccounts(path, passphraseFromEnv(), accounts); err != nil {
		fatal("export accounts: %v", err)
	}
	fmt.Fprintf(os.Stderr, "exported %d account(s) to %s\n", len(accounts), path)
}

func importAccounts(path string) {
	data, err := ay32.ImportEmailAccounts(path, passphraseFromEnv())
	if err != nil {
		fatal("import accounts: %v", err)
	}
	printJSON(data)
}

// sourceFromEnv picks the email source, defaulting to huel.
func sourceFromEnv() string {
	if s := os.Getenv("AY32_EMAIL_SOURCE"); s != "" {
		return s
	}
	return ay32.EmailSourceHuel
}

func passphraseFromEnv() string {
	p := os.Getenv("AY32_EXPORT_PASSPHRASE")
	if p == "" {
		fatal("AY32_EXPORT_PASSPHRASE environment variable is required")
	}
	return p
}

func requireArg(i int, name string) string {
	if len(os.Args) <= i {
		fatal("missing argument: %s", name)
	}
	return os.Args[i]
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fatal("encode output: %v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
