package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

// Probes the deployed frontend and backend the way the dashboard's uptime
// monitor does: plain GETs with a bounded timeout, non-zero exit if any
// target is unhealthy.

type result struct {
	name    string
	healthy bool
	detail  string
}

func check(client *http.Client, name, url string) result {
	resp, err := client.Get(url)
	if err != nil {
		return result{name: name, detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return result{name: name, detail: fmt.Sprintf("status %d", resp.StatusCode)}
	}
	return result{name: name, healthy: true, detail: "200"}
}

func main() {
	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:3000"
	}
	backend := os.Getenv("BACKEND_URL")
	if backend == "" {
		backend = "http://localhost:5000"
	}

	client := &http.Client{Timeout: 10 * time.Second}

	targets := []struct{ name, url string }{
		{"frontend", frontend},
		{"backend", backend},
		{"backend api", backend + "/health"},
	}

	log.Println("starting health checks...")
	allHealthy := true
	for _, t := range targets {
		res := check(client, t.name, t.url)
		if res.healthy {
			log.Printf("%s: healthy (%s)", res.name, res.detail)
		} else {
			log.Printf("%s: unhealthy (%s)", res.name, res.detail)
			allHealthy = false
		}
	}

	if !allHealthy {
		log.Println("some services are unhealthy")
		os.Exit(1)
	}
	log.Println("all services are healthy")
}
