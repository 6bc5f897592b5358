// Command salebench fires concurrent POST /sale/new requests at a running
// server and reports how many were accepted, per status and body.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

type loginResponse struct {
	Token string `json:"token"`
}

type outcome struct {
	status int
	body   string
}

func main() {
	baseURL := flag.String("url", "http://localhost:3000", "server base URL")
	productID := flag.Uint("product", 1, "product id")
	clientID := flag.Uint("client", 1, "client id")
	quantity := flag.Int("quantity", 1, "units per sale")
	requests := flag.Int("requests", 20, "number of sale requests")
	workers := flag.Int("workers", 20, "concurrent workers")
	email := flag.String("email", "", "operator email, when the server requires auth")
	password := flag.String("password", "", "operator password")
	flag.Parse()

	client := resty.New().
		SetBaseURL(*baseURL).
		SetTimeout(10 * time.Second)

	if *email != "" {
		var res loginResponse
		resp, err := client.R().
			SetBody(map[string]string{"email": *email, "password": *password}).
			SetResult(&res).
			Post("/auth/login")
		if err != nil {
			log.Fatalf("login: %v", err)
		}
		if resp.IsError() {
			log.Fatalf("login: %s %s", resp.Status(), resp.String())
		}
		client.SetAuthToken(res.Token)
	}

	jobs := make(chan struct{})
	results := make(chan outcome, *requests)
	var wg sync.WaitGroup

	start := time.Now()
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				resp, err := client.R().
					SetQueryParams(map[string]string{
						"productId": strconv.FormatUint(uint64(*productID), 10),
						"clientId":  strconv.FormatUint(uint64(*clientID), 10),
						"quantity":  strconv.Itoa(*quantity),
					}).
					Post("/sale/new")
				if err != nil {
					results <- outcome{status: 0, body: err.Error()}
					continue
				}
				results <- outcome{status: resp.StatusCode(), body: resp.String()}
			}
		}()
	}

	for i := 0; i < *requests; i++ {
		jobs <- struct{}{}
	}
	close(jobs)
	wg.Wait()
	close(results)
	elapsed := time.Since(start)

	counts := map[string]int{}
	accepted := 0
	for r := range results {
		key := fmt.Sprintf("%d %s", r.status, r.body)
		if r.status == 200 {
			accepted++
			key = "200 (sale id)"
		}
		counts[key]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("%d requests in %s, %d accepted\n", *requests, elapsed.Round(time.Millisecond), accepted)
	for _, k := range keys {
		fmt.Printf("  %4d  %s\n", counts[k], k)
	}
}
