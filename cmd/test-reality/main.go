// Command test-reality exercises the client against a real controller.
// It is a manual smoke test, not part of the automated suite: it needs a
// reachable controller and valid credentials.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	unifi "github.com/lexfrei/go-unifi-controller"
)

var (
	controllerURL = flag.String("url", os.Getenv("UNIFI_CONTROLLER_URL"), "Controller URL (or UNIFI_CONTROLLER_URL env)")
	username      = flag.String("username", os.Getenv("UNIFI_USERNAME"), "Controller username (or UNIFI_USERNAME env)")
	password      = flag.String("password", os.Getenv("UNIFI_PASSWORD"), "Controller password (or UNIFI_PASSWORD env)")
	site          = flag.String("site", "default", "Site to probe")
	kickMAC       = flag.String("kick", "", "Optional: MAC of a station to kick (disruptive)")
)

type result struct {
	name     string
	err      error
	duration time.Duration
}

func main() {
	flag.Parse()

	if *controllerURL == "" || *username == "" || *password == "" {
		log.Fatal("Controller URL, username and password are required (flags or UNIFI_* environment variables)")
	}

	fmt.Println("Testing go-unifi-controller against reality...")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	client, err := unifi.New(*controllerURL)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx := context.Background()
	var results []result

	run := func(name string, fn func() error) {
		start := time.Now()
		err := fn()
		results = append(results, result{name: name, err: err, duration: time.Since(start)})
		status := "ok"
		if err != nil {
			status = "FAIL: " + err.Error()
		}
		fmt.Printf("  %-30s %-10v %s\n", name, time.Since(start).Round(time.Millisecond), status)
	}

	run("login", func() error {
		return client.Login(ctx, *username, *password)
	})

	run("list sites", func() error {
		sites, err := client.ListSites(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("    %d sites visible\n", len(sites))
		return nil
	})

	run("stat clients", func() error {
		stations, err := client.StatClients(ctx, *site)
		if err != nil {
			return err
		}
		fmt.Printf("    %d stations on site %s\n", len(stations), *site)
		return nil
	})

	run("stat devices", func() error {
		devices, err := client.StatDevices(ctx, *site)
		if err != nil {
			return err
		}
		fmt.Printf("    %d devices on site %s\n", len(devices), *site)
		return nil
	})

	if *kickMAC != "" {
		run("kick station", func() error {
			return client.ReconnectClient(ctx, *site, *kickMAC)
		})
	}

	run("logout and relogin", func() error {
		if err := client.Logout(ctx); err != nil {
			return err
		}
		return client.Relogin(ctx)
	})

	fmt.Println()
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
		}
	}

	fmt.Printf("%d/%d checks passed\n", len(results)-failed, len(results))
	if failed > 0 {
		os.Exit(1)
	}
}
