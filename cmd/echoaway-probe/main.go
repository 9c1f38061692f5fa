// Command echoaway-probe exercises a live EchoAway backend: connectivity,
// authentication, and listing reads.
//
// Configuration comes from, in increasing precedence: a YAML config file
// (-config), a .env file in the working directory, process environment
// (ECHOAWAY_API_URL), and flags (-base).
//
// Examples:
//
//	echoaway-probe -base https://echoaway.example.com
//	echoaway-probe -base https://echoaway.example.com -email a@x.com -password pw -list
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	echoaway "github.com/echoaway/echoaway-go"
	"github.com/echoaway/echoaway-go/storage"
)

func main() {
	var (
		configPath  = flag.String("config", "", "YAML config file")
		baseURL     = flag.String("base", "", "backend base URL; overrides config and env")
		email       = flag.String("email", "", "login email; empty skips authentication")
		password    = flag.String("password", "", "login password")
		list        = flag.Bool("list", false, "fetch the accommodation listings")
		sessionFile = flag.String("session-file", "", "persist the session to this file instead of keeping it in memory")
		timeout     = flag.Duration("timeout", 10*time.Second, "overall probe timeout")
		auditLog    = flag.Bool("audit", false, "print session audit events to stderr")
	)
	flag.Parse()

	// Best-effort .env, matching local development setups.
	_ = godotenv.Load()

	cfg := echoaway.ConfigFromEnv()
	if *configPath != "" {
		loaded, err := echoaway.LoadConfigFile(*configPath)
		if err != nil {
			fail("load config: %v", err)
		}
		cfg = loaded
	}
	if *baseURL != "" {
		cfg.API.BaseURL = *baseURL
	}
	if cfg.API.BaseURL == "" {
		fail("no base URL: pass -base, set ECHOAWAY_API_URL, or use -config")
	}

	builder := echoaway.New().WithConfig(cfg)
	if *auditLog {
		builder.WithAuditSink(echoaway.NewJSONWriterSink(os.Stderr))
	}
	if *sessionFile != "" {
		store, err := storage.NewFileStore(*sessionFile)
		if err != nil {
			fail("session file: %v", err)
		}
		builder.WithStorage(store)
	} else {
		builder.WithStorage(storage.NewMemoryStore())
	}

	session, err := builder.Build()
	if err != nil {
		fail("build session: %v", err)
	}
	defer session.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	report := session.Client().TestConnection(ctx)
	if !report.Success {
		fail("backend unreachable at %s after %s: %v", report.URL, report.ResponseTime, report.Err)
	}
	fmt.Printf("backend healthy at %s (%s)\n", report.URL, report.ResponseTime)

	if *email != "" {
		resp, err := session.Login(ctx, *email, *password)
		if err != nil {
			fail("login: %v", err)
		}
		fmt.Printf("logged in as %s (role %s)\n", resp.User.Email, session.UserRole())
		if expiry, ok := session.TokenExpiry(); ok {
			fmt.Printf("token expires %s\n", expiry.Format(time.RFC3339))
		}

		if ok, err := session.CheckAuth(ctx); !ok {
			fail("token verification failed: %v", err)
		}
		fmt.Println("token verified")
	}

	if *list {
		listings, err := session.Client().ListAccommodations(ctx)
		if err != nil {
			fail("list accommodations: %v", err)
		}
		fmt.Printf("%d accommodations\n", len(listings))
		for _, a := range listings {
			fmt.Printf("  #%d %-30s %s (%s)\n", a.ID, a.Title, a.City, a.Type)
		}
	}

	if *email != "" && *sessionFile == "" {
		_ = session.Logout(ctx)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
