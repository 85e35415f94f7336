// contactctl submits a contact message to a running portfolio API,
// useful for smoke-testing a deployment.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hashirsyed/portfolio-api/pkg/client"
)

func main() {
	api := flag.String("api", "http://localhost:8080", "base URL of the portfolio API")
	name := flag.String("name", "", "sender name")
	email := flag.String("email", "", "sender email address")
	message := flag.String("message", "", "message body")
	timeout := flag.Duration("timeout", 30*time.Second, "overall request timeout")
	flag.Parse()

	cli, err := client.New(*api)
	if err != nil {
		fmt.Fprintf(os.Stderr, "contactctl: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	form := client.NewForm(cli)
	form.SetField("name", *name)
	form.SetField("email", *email)
	form.SetField("message", *message)

	if err := form.Submit(ctx); err != nil {
		note := form.Notification()
		fmt.Fprintf(os.Stderr, "contactctl: %s (%v)\n", note.Message, err)
		os.Exit(1)
	}

	fmt.Println(form.Notification().Message)
}
