package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"todostarter/client"
	"todostarter/domain"
	"todostarter/query"
)

func main() {
	addr := flag.String("addr", client.DefaultBaseURL, "base URL of the todo server")
	delay := flag.Duration("delay", 500*time.Millisecond, "artificial delay after each fetch, to show the loading panel")
	stale := flag.Duration("stale", query.DefaultStaleAfter, "how long fetched todos stay fresh")
	flag.Parse()

	api := client.New(client.Options{
		BaseURL: *addr,
		Delay:   *delay,
	})
	cache := query.NewCache[domain.Todos](*stale)

	p := tea.NewProgram(newModel(api, cache))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "todoctl:", err)
		os.Exit(1)
	}
}
