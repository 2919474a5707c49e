// Command send-contact submits one contact form to a running site, the same
// way the browser form does.
package main

import (
	"context"
	"flag"
	"fmt"
	"northbridge_site_go/client"
	"os"
	"os/signal"
	"strings"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/api/contact", "contact endpoint URL")
	lang := flag.String("lang", "", "reply language (en or es)")

	values := make(map[client.Field]*string, len(client.Fields))
	for _, field := range client.Fields {
		values[field] = flag.String(string(field), "", fmt.Sprintf("value for %s", field))
	}

	var goals []string
	flag.Func("goal", "goal tag to select (repeatable; repeating a tag deselects it)", func(v string) error {
		goals = append(goals, strings.TrimSpace(v))
		return nil
	})
	flag.Parse()

	var opts []client.Option
	if *lang != "" {
		opts = append(opts, client.WithLanguage(*lang))
	}
	form := client.New(*endpoint, opts...)
	for _, field := range client.Fields {
		form.UpdateField(field, *values[field])
	}
	for _, g := range goals {
		form.ToggleGoal(g)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch status := form.Submit(ctx); status {
	case client.StatusSuccess:
		fmt.Println("Submission sent.")
	default:
		fmt.Fprintf(os.Stderr, "Submission failed (%s): %v\n", status, form.Err())
		os.Exit(1)
	}
}
